package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/qagen/internal/archive"
	"github.com/dgallion1/qagen/internal/extract"
	"github.com/dgallion1/qagen/internal/parser"
)

// Worker processes a single extraction job.
type Worker struct {
	archive *archive.Store
	stats   *extract.RunStats
	log     *slog.Logger

	pace        time.Duration
	pdfFallback bool
}

// NewWorker returns a Worker. store and stats may be nil.
func NewWorker(store *archive.Store, stats *extract.RunStats, log *slog.Logger, pace time.Duration, pdfFallback bool) *Worker {
	return &Worker{
		archive:     store,
		stats:       stats,
		log:         log,
		pace:        pace,
		pdfFallback: pdfFallback,
	}
}

// Process runs parse, archive lookup, extraction and archiving for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	locale, err := extract.LocaleFor(job.Language)
	if err != nil {
		log.Error("unsupported language", "error", err)
		job.Fail("queued", err)
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	loader := parser.Loader{Heading: locale.Upper, PDFFallbackPdftotext: w.pdfFallback}
	text, err := loader.Load(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail("parsing", fmt.Errorf("parse: %w", err))
		return
	}
	job.releaseFileData()
	if strings.TrimSpace(text) == "" {
		log.Warn("no extractable text")
		job.Fail("parsing", ErrEmptyInput)
		return
	}

	hash := ContentHashHex([]byte(text))
	job.setContentHash(hash)
	key := archive.Key{ContentHash: hash, Limits: job.Limits, Language: locale.Code}

	// Phase 1.5: Archive check
	if w.archive != nil {
		entry, ok, err := w.archive.Lookup(ctx, key)
		if err != nil {
			log.Warn("archive lookup failed, proceeding", "error", err)
		} else if ok {
			log.Info("reusing archived result", "pairs", len(entry.Result), "archived_at", entry.CreatedAt)
			job.Complete(entry.Result, true)
			return
		}
	}

	// Phase 2: Extract
	job.SetStatus(StatusExtracting, "extracting")
	ex := extract.New(extract.Options{Locale: locale, Pace: w.pace})
	start := time.Now()
	result, err := protect(func() extract.Result {
		return ex.Extract(text, job.Limits, job.SetPercent)
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.Fail("extracting", err)
		return
	}
	if w.stats != nil {
		w.stats.Record(elapsed.Milliseconds())
	}
	log.Info("extraction complete", "pairs", len(result), "answers", result.AnswerCount(), "duration_ms", elapsed.Milliseconds())

	// Phase 3: Archive
	if w.archive != nil {
		job.SetStatus(StatusArchiving, "archiving")
		if err := w.archive.Save(ctx, key, result); err != nil {
			log.Warn("archive write failed", "error", err)
			job.AddError(fmt.Sprintf("archive: %s", err))
		}
	}

	job.Complete(result, false)
}
