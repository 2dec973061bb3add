package pipeline

import (
	"fmt"

	"github.com/dgallion1/qagen/internal/extract"
)

// Outcome is the final state of a Run: a Result or the fault that ended it.
type Outcome struct {
	Result extract.Result
	Err    error
}

// Run is one extraction executing on its own goroutine.
type Run struct {
	progress chan float64
	done     chan Outcome
}

// Start runs the extractor over text in the background. Progress values are
// published on a one-slot channel; a reader that falls behind sees only the
// latest value. Exactly one Outcome is delivered on Done.
func Start(text string, limits extract.WordLimits, opts extract.Options) *Run {
	r := &Run{
		progress: make(chan float64, 1),
		done:     make(chan Outcome, 1),
	}
	ex := extract.New(opts)

	go func() {
		defer close(r.progress)
		result, err := protect(func() extract.Result {
			return ex.Extract(text, limits, r.publish)
		})
		r.done <- Outcome{Result: result, Err: err}
		close(r.done)
	}()
	return r
}

// Progress returns the progress channel. It is closed when the run ends.
func (r *Run) Progress() <-chan float64 {
	return r.progress
}

// Done delivers the outcome once.
func (r *Run) Done() <-chan Outcome {
	return r.done
}

// Wait blocks until the run ends, discarding progress.
func (r *Run) Wait() (extract.Result, error) {
	for range r.progress {
	}
	out := <-r.done
	return out.Result, out.Err
}

// publish replaces any unread progress value with percent.
func (r *Run) publish(percent float64) {
	for {
		select {
		case r.progress <- percent:
			return
		default:
		}
		select {
		case <-r.progress:
		default:
		}
	}
}

// protect runs fn and converts a panic into an error. A faulted run yields
// no partial result.
func protect(fn func() extract.Result) (result extract.Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			result = nil
			if e, ok := v.(error); ok {
				err = fmt.Errorf("extract: %w", e)
			} else {
				err = fmt.Errorf("extract: panic: %v", v)
			}
		}
	}()
	return fn(), nil
}
