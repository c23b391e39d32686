package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/donationDB/Donation-Web/internal/metrics"
)

// Job is one unit of scheduled work.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler runs its jobs once on Start and then every day at a fixed local
// time. Job failures are logged, reported and swallowed.
type Scheduler struct {
	hour, minute int
	loc          *time.Location
	jobs         []Job
	now          func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler parses at as "HH:MM" in loc.
func NewScheduler(at string, loc *time.Location, jobs ...Job) (*Scheduler, error) {
	hour, minute, err := ParseClock(at)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{hour: hour, minute: minute, loc: loc, jobs: jobs, now: time.Now}, nil
}

// ParseClock parses a 24-hour "HH:MM" time of day.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextRun returns the first instant strictly after now at hour:minute in
// now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return next
}

// Start runs every job once and schedules the daily runs. It returns
// immediately; Stop ends the loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	s.done = done

	go func() {
		defer close(done)
		s.RunOnce(ctx)
		for {
			now := s.now().In(s.loc)
			timer := time.NewTimer(NextRun(now, s.hour, s.minute).Sub(now))
			select {
			case <-timer.C:
				s.RunOnce(ctx)
			case <-ctx.Done():
				timer.Stop()
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for a running job to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// RunOnce runs every job in order. A failing or panicking job does not stop
// the others.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		s.run(ctx, job)
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			metrics.JobRuns.WithLabelValues(job.Name, "panic").Inc()
			sentry.CurrentHub().Recover(r)
			slog.Error("scheduled job panicked", "operation", job.Name, "panic", fmt.Sprint(r))
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		metrics.JobRuns.WithLabelValues(job.Name, "error").Inc()
		sentry.CaptureException(err)
		slog.Error("scheduled job failed", "operation", job.Name, "error", err,
			"latency_ms", float64(time.Since(start).Milliseconds()))
		return
	}
	metrics.JobRuns.WithLabelValues(job.Name, "ok").Inc()
}
