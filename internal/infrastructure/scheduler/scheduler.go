package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one unit of scheduled work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler runs registered jobs once a day at a fixed hour and minute. The
// schedule accepts the "M H * * *" subset of cron syntax; anything fancier is
// rejected at construction.
type Scheduler struct {
	hour   int
	minute int
	jobs   []Job
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a scheduler from a cron expression like "0 2 * * *"
func New(cronExpr string, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	hour, minute, err := parseDailyCron(cronExpr)
	if err != nil {
		return nil, err
	}
	return &Scheduler{hour: hour, minute: minute, logger: logger}, nil
}

// Register adds a job to the daily run. Jobs execute in registration order.
func (s *Scheduler) Register(name string, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, Job{Name: name, Run: run})
}

// Start begins the scheduling loop. It returns immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.loop(ctx)
	s.logger.Info("scheduler started",
		zap.Int("hour", s.hour),
		zap.Int("minute", s.minute),
		zap.Int("jobs", len(s.jobs)),
	)
}

// Stop cancels the loop and waits for any in-flight run to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastRun time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !s.shouldRun(now, lastRun) {
				continue
			}
			lastRun = now
			s.runJobs(ctx)
		}
	}
}

// shouldRun fires once per day at the configured minute. The lastRun guard
// keeps a slow tick from triggering twice within the same minute.
func (s *Scheduler) shouldRun(now, lastRun time.Time) bool {
	if now.Hour() != s.hour || now.Minute() != s.minute {
		return false
	}
	return lastRun.IsZero() || now.Sub(lastRun) > time.Minute
}

func (s *Scheduler) runJobs(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed",
				zap.String("job", job.Name),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("scheduled job finished",
			zap.String("job", job.Name),
			zap.Duration("took", time.Since(start)),
		)
	}
}

// parseDailyCron extracts minute and hour from a "M H * * *" expression
func parseDailyCron(expr string) (hour, minute int, err error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return 0, 0, fmt.Errorf("invalid cron expression %q: want 5 fields", expr)
	}
	for _, f := range fields[2:] {
		if f != "*" {
			return 0, 0, fmt.Errorf("invalid cron expression %q: only daily schedules are supported", expr)
		}
	}
	minute, err = strconv.Atoi(fields[0])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid cron minute %q", fields[0])
	}
	hour, err = strconv.Atoi(fields[1])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid cron hour %q", fields[1])
	}
	return hour, minute, nil
}
