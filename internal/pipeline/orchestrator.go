package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/qagen/internal/archive"
	"github.com/dgallion1/qagen/internal/config"
	"github.com/dgallion1/qagen/internal/extract"
)

// cleanupInterval is how often expired jobs and archive entries are dropped.
const cleanupInterval = 5 * time.Minute

// Orchestrator runs extraction jobs on a fixed worker pool.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	archive *archive.Store
	stats   *extract.RunStats
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex // guards stopped and the close of queue
	stopped bool
}

// NewOrchestrator creates the pipeline. store may be nil to disable the
// result archive.
func NewOrchestrator(cfg config.Config, store *archive.Store, stats *extract.RunStats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:    NewJobStore(cfg.JobTTL),
		queue:   make(chan *Job, cfg.MaxQueueSize),
		archive: store,
		stats:   stats,
		log:     log,
		cfg:     cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.archive, o.stats, o.log, o.cfg.Pace, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store and archive cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.cleanup(workerCtx)
			}
		}
	}()
}

func (o *Orchestrator) cleanup(ctx context.Context) {
	o.jobs.Cleanup()
	if o.archive == nil || o.cfg.ArchiveTTL <= 0 {
		return
	}
	n, err := o.archive.Prune(ctx, time.Now().Add(-o.cfg.ArchiveTTL))
	if err != nil {
		o.log.Warn("archive prune failed", "error", err)
		return
	}
	if n > 0 {
		o.log.Info("pruned archived results", "count", n)
	}
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	close(o.queue)
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing. Jobs submitted after Stop fail
// with ErrStopped.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)

	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.stopped {
		job.Fail("submit", ErrStopped)
		return ErrStopped
	}
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("queue_full", ErrQueueFull)
		return fmt.Errorf("%w (%d)", ErrQueueFull, o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the run duration tracker, or nil.
func (o *Orchestrator) Stats() *extract.RunStats {
	return o.stats
}
