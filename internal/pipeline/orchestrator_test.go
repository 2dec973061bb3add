package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgallion1/qagen/internal/config"
	"github.com/dgallion1/qagen/internal/extract"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.WorkerCount = 2
	cfg.MaxQueueSize = 4
	cfg.ArchivePath = ""
	return cfg
}

func waitForStatus(t *testing.T, job *Job, want JobStatus) JobSnapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := job.Snapshot()
		if snap.Status == want {
			return snap
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Errors)
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job did not reach %q, last %+v", want, job.Snapshot())
	return JobSnapshot{}
}

func TestOrchestratorRunsJobs(t *testing.T) {
	stats := extract.NewRunStats(0)
	o := NewOrchestrator(testConfig(), openArchive(t), stats, discardLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob("notes.txt", []byte(sampleText), extract.DefaultWordLimits, "tr")
	if err := o.Submit(job); err != nil {
		t.Fatal(err)
	}
	if o.GetJob(job.ID) != job {
		t.Fatal("submitted job not registered")
	}

	snap := waitForStatus(t, job, StatusCompleted)
	if snap.Pairs != 2 {
		t.Errorf("pairs = %d, want 2", snap.Pairs)
	}
	if o.Stats().Snapshot().Count != 1 {
		t.Errorf("expected one recorded run")
	}
}

func TestOrchestratorQueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueueSize = 1
	o := NewOrchestrator(cfg, nil, nil, discardLogger())
	// Workers are not started, so the queue never drains.

	if err := o.Submit(NewJob("a.txt", []byte("a"), extract.DefaultWordLimits, "")); err != nil {
		t.Fatal(err)
	}
	job := NewJob("b.txt", []byte("b"), extract.DefaultWordLimits, "")
	err := o.Submit(job)
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
	if job.Snapshot().Status != StatusFailed {
		t.Errorf("rejected job status = %q", job.Snapshot().Status)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("QueueDepth = %d", o.QueueDepth())
	}
	o.Stop()
}

func TestOrchestratorSubmitAfterStop(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil, nil, discardLogger())
	o.Start(context.Background())
	o.Stop()
	o.Stop()

	job := NewJob("late.txt", []byte(sampleText), extract.DefaultWordLimits, "tr")
	if err := o.Submit(job); !errors.Is(err, ErrStopped) {
		t.Fatalf("err = %v, want ErrStopped", err)
	}
	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("status = %q, want failed", snap.Status)
	}
	if _, ok := job.Result(); ok {
		t.Error("stopped job exposes a result")
	}
}
