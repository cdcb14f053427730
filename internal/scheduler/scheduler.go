// Package scheduler runs the daily expiry-alert job. Ticks are serialized
// by a single-flight guard: a tick that fires while the previous run is
// still in flight is skipped, never run in parallel, so a slow run can
// not cause double-sending.
package scheduler

import (
	"context"
	"sync"
	"time"

	"pharmatrack-backend/internal/logger"
)

// Job is one scheduled unit of work
type Job func(ctx context.Context) error

// DailyScheduler fires a job once a day at a fixed hour.
type DailyScheduler struct {
	name string
	hour int
	job  Job
	log  *logger.Logger

	running sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	now     func() time.Time
}

// NewDailyScheduler creates a scheduler firing job every day at hour (0-23).
func NewDailyScheduler(name string, hour int, job Job) *DailyScheduler {
	return &DailyScheduler{
		name: name,
		hour: hour,
		job:  job,
		log:  logger.New().WithField("scheduler", name),
		stop: make(chan struct{}),
		done: make(chan struct{}),
		now:  time.Now,
	}
}

// Start launches the schedule loop in its own goroutine.
func (s *DailyScheduler) Start() {
	go s.loop()
}

// Stop terminates the schedule loop and waits for it to exit. A job run
// already in flight finishes on its own.
func (s *DailyScheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *DailyScheduler) loop() {
	defer close(s.done)
	for {
		next := s.nextRun()
		s.log.Infof("next run at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			s.RunOnce(context.Background())
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// RunOnce executes the job under the single-flight guard. Returns false
// if a previous run still holds the guard and this tick was skipped.
func (s *DailyScheduler) RunOnce(ctx context.Context) bool {
	if !s.running.TryLock() {
		s.log.Warn("previous run still in progress, skipping tick")
		return false
	}
	defer s.running.Unlock()

	started := s.now()
	if err := s.job(ctx); err != nil {
		s.log.Errorf("run failed after %s: %v", time.Since(started), err)
		return true
	}
	s.log.Infof("run completed in %s", time.Since(started))
	return true
}

// nextRun returns the next occurrence of the configured hour.
func (s *DailyScheduler) nextRun() time.Time {
	now := s.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
