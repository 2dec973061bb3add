package pipeline

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/qagen/internal/extract"
)

var (
	// ErrEmptyInput is reported for a document with no text.
	ErrEmptyInput = errors.New("input text is empty")
	// ErrQueueFull is returned by Submit when no queue slot is free.
	ErrQueueFull = errors.New("job queue is full")
	// ErrStopped is returned by Submit once Stop has been called.
	ErrStopped = errors.New("pipeline is stopped")
)

// JobStatus represents the state of an extraction job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusParsing    JobStatus = "parsing"
	StatusExtracting JobStatus = "extracting"
	StatusArchiving  JobStatus = "archiving"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single document extraction.
type Job struct {
	mu sync.Mutex

	ID       string
	Filename string
	Language string
	Limits   extract.WordLimits

	Status  JobStatus
	Phase   string
	Percent float64
	Cached  bool

	ContentHash string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Internal: not serialized.
	fileData []byte
	result   extract.Result
	errors   []string
}

// NewJob creates a queued job for a document. Limits are normalized and an
// empty language selects the default locale.
func NewJob(filename string, data []byte, limits extract.WordLimits, language string) *Job {
	if language == "" {
		language = extract.DefaultLocale.Code
	}
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		Language:  language,
		Limits:    limits.Normalize(),
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		updated := job.UpdatedAt
		job.mu.Unlock()
		if now.Sub(updated) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// Fail records err and marks the job failed. Any result is discarded.
func (j *Job) Fail(phase string, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err.Error())
	j.result = nil
	j.Status = StatusFailed
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records a non-fatal error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// SetPercent records extraction progress. It has the shape of
// extract.ProgressFunc so it can be passed as the progress sink.
func (j *Job) SetPercent(percent float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Percent = percent
	j.UpdatedAt = time.Now()
}

// Complete stores the final result and marks the job completed.
func (j *Job) Complete(result extract.Result, cached bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = result
	j.Cached = cached
	j.Percent = 100
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
}

// Result returns the extracted pairs once the job has completed.
func (j *Job) Result() (extract.Result, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Status != StatusCompleted {
		return nil, false
	}
	return j.result, true
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

func (j *Job) setContentHash(hash string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ContentHash = hash
}

// releaseFileData drops the upload once it has been parsed.
func (j *Job) releaseFileData() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = nil
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string             `json:"job_id"`
	Filename    string             `json:"filename"`
	Language    string             `json:"language"`
	Limits      extract.WordLimits `json:"limits"`
	Status      JobStatus          `json:"status"`
	Phase       string             `json:"phase"`
	Percent     float64            `json:"percent"`
	Pairs       int                `json:"pairs"`
	Answers     int                `json:"answers"`
	Cached      bool               `json:"cached"`
	ContentHash string             `json:"content_hash,omitempty"`
	Errors      []string           `json:"errors"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := make([]string, len(j.errors))
	copy(errs, j.errors)
	return JobSnapshot{
		ID:          j.ID,
		Filename:    j.Filename,
		Language:    j.Language,
		Limits:      j.Limits,
		Status:      j.Status,
		Phase:       j.Phase,
		Percent:     j.Percent,
		Pairs:       len(j.result),
		Answers:     j.result.AnswerCount(),
		Cached:      j.Cached,
		ContentHash: j.ContentHash,
		Errors:      errs,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
