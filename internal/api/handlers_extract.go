package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qagen/internal/export"
	"github.com/dgallion1/qagen/internal/extract"
	"github.com/dgallion1/qagen/internal/parser"
	"github.com/dgallion1/qagen/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// textFilename names documents submitted through the "text" form field.
const textFilename = "input.txt"

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		jsonError(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	filename, data, status, err := s.readDocument(r)
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	locale, err := s.cfg.Locale()
	if lang := r.FormValue("lang"); lang != "" {
		locale, err = extract.LocaleFor(lang)
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limits := s.cfg.WordLimits().Parse(r.FormValue("short"), r.FormValue("medium"), r.FormValue("long"))

	job := pipeline.NewJob(filename, data, limits, locale.Code)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     job.ID,
		"status":     pipeline.StatusQueued,
		"language":   job.Language,
		"limits":     job.Limits,
		"poll_url":   fmt.Sprintf("/api/extract/%s/status", job.ID),
		"result_url": fmt.Sprintf("/api/extract/%s/result", job.ID),
	})
}

// readDocument returns the uploaded file, or the "text" field when no file
// was sent. Blank input is rejected before a job is created.
func (s *Server) readDocument(r *http.Request) (string, []byte, int, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		text := r.FormValue("text")
		if strings.TrimSpace(text) == "" {
			return "", nil, http.StatusBadRequest, fmt.Errorf("file or text is required: %w", pipeline.ErrEmptyInput)
		}
		if int64(len(text)) > s.cfg.MaxUploadBytes {
			return "", nil, http.StatusRequestEntityTooLarge, fmt.Errorf("text exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
		}
		return textFilename, []byte(text), 0, nil
	}
	if err != nil {
		return "", nil, http.StatusBadRequest, fmt.Errorf("invalid file: %w", err)
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return "", nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, http.StatusInternalServerError, errors.New("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", nil, http.StatusBadRequest, pipeline.ErrEmptyInput
	}
	return filename, data, 0, nil
}

func (s *Server) handleExtractStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleExtractResult(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(export.FormatJSON)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, ok := job.Result()
	if !ok {
		snap := job.Snapshot()
		jsonError(w, fmt.Sprintf("job is %s", snap.Status), http.StatusConflict)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result); err != nil {
		s.log.Error("render result", "job_id", job.ID, "format", format, "error", err)
		jsonError(w, "failed to render result", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resultFilename(job.Filename, format)))
	w.Write(buf.Bytes())
}

// resultFilename derives a download name such as "lecture-notes-qa.md".
func resultFilename(source string, format export.Format) string {
	base := extract.Slugify(strings.TrimSuffix(source, filepath.Ext(source)))
	if base == "" {
		base = "document"
	}
	return base + "-qa" + format.Extension()
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
