// Package jobs runs background maintenance work on a single worker.
package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const queueSize = 128

// Func is one unit of background work. The returned details are logged.
type Func func(ctx context.Context) (any, error)

type job struct {
	Type string
	Run  Func
}

type Service struct {
	log   zerolog.Logger
	queue chan job
}

func New(log zerolog.Logger) *Service {
	return &Service{log: log, queue: make(chan job, queueSize)}
}

// Start runs the worker until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

// Enqueue schedules run without blocking. A full queue drops the job.
func (s *Service) Enqueue(jobType string, run Func) bool {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
		return true
	default:
		s.log.Warn().Str("jobType", jobType).Msg("job queue full")
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run Func) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// Every enqueues run on each tick of interval until ctx is cancelled.
func (s *Service) Every(ctx context.Context, interval time.Duration, jobType string, run Func) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Enqueue(jobType, run)
			}
		}
	}()
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			_, _ = s.runJob(ctx, j)
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	start := time.Now()
	details, err := j.Run(ctx)
	evt := s.log.Debug()
	if err != nil {
		evt = s.log.Warn().Err(err)
	}
	evt.Str("jobType", j.Type).Dur("elapsed", time.Since(start)).Interface("details", details).Msg("job finished")
	return details, err
}
