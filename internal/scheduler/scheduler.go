// Package scheduler provides a small interval-based job runner. Jobs are
// registered under stable identifiers; re-registering an identifier replaces
// the running job instead of starting a duplicate trigger.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is the unit of work a scheduler trigger invokes. The context is
// cancelled when the job is replaced or the scheduler stops.
type Job func(ctx context.Context)

type job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler runs registered jobs on fixed intervals. Each job executes
// synchronously inside its own tick loop, so at most one run per job is in
// flight at a time; a tick arriving mid-run is coalesced by the ticker.
type Scheduler struct {
	logger *slog.Logger

	mu   sync.Mutex
	jobs map[string]*job
}

// New creates a Scheduler.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger: logger,
		jobs:   make(map[string]*job),
	}
}

// Register starts a periodic trigger for fn under the given id. If a job with
// the same id is already registered it is stopped and replaced, which keeps
// registration idempotent across restarts and reloads. The first run happens
// one interval after registration.
func (s *Scheduler) Register(id string, interval time.Duration, fn Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.jobs[id]; ok {
		existing.cancel()
		<-existing.done
		s.logger.Info("Replacing scheduled job", slog.String("job_id", id))
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &job{cancel: cancel, done: make(chan struct{})}
	s.jobs[id] = j

	go s.runLoop(ctx, j, id, interval, fn)

	s.logger.Info("Scheduled job registered",
		slog.String("job_id", id),
		slog.Duration("interval", interval),
	)
}

func (s *Scheduler) runLoop(ctx context.Context, j *job, id string, interval time.Duration, fn Job) {
	defer close(j.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			fn(ctx)
			s.logger.Debug("Scheduled job tick complete",
				slog.String("job_id", id),
				slog.Duration("duration", time.Since(start)),
			)
		}
	}
}

// Stop cancels all registered jobs and waits for in-flight runs until ctx
// expires. A run that outlives ctx keeps finishing in the background.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	stopping := make([]*job, 0, len(s.jobs))
	for _, j := range s.jobs {
		j.cancel()
		stopping = append(stopping, j)
	}
	s.jobs = make(map[string]*job)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, j := range stopping {
			<-j.done
		}
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
