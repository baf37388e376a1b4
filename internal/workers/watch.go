package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-utils/internal/logger"
)

type watchJob struct {
	pass   func(ctx context.Context) error
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatchJob creates a watchJob that executes pass on a ticker. The job
// is idle until Start is called; Run executes a single pass immediately.
func NewWatchJob(pass func(ctx context.Context) error, logger *logger.Logger) Job {
	return &watchJob{pass: pass, logger: logger}
}

// Run implements [Worker]. It executes one pass synchronously, reporting
// a failed pass through the logger.
func (j *watchJob) Run() {
	if err := j.pass(context.Background()); err != nil {
		j.logger.Error().Err(err).Msg("merge pass failed")
	}
}

// Start implements [Job]. It stops any previously running schedule, then
// launches a background goroutine that executes the pass every interval.
// If interval is zero or negative it defaults to 2 seconds. A failed pass
// is logged and does not stop the schedule. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *watchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.pass(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("merge pass failed, will retry on next tick")
				}
			}
		}
	}()
}

// Stop implements [Job]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *watchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
