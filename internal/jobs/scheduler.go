package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Job is a named unit of periodic work.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs on cron schedules until its context ends.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

func NewScheduler(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log,
	}
}

// Add registers jobs. It fails on the first invalid schedule.
func (s *Scheduler) Add(ctx context.Context, jobs ...Job) error {
	for _, job := range jobs {
		_, err := s.cron.AddFunc(job.Schedule, func() {
			s.runJob(ctx, job)
		})
		if err != nil {
			return fmt.Errorf("schedule %s (%q): %w", job.Name, job.Schedule, err)
		}
	}
	return nil
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	log := s.log.WithFields(map[string]any{"job": job.Name})
	defer func() {
		if r := recover(); r != nil {
			log.Error(fmt.Errorf("panic: %v", r), "scheduled job panicked")
		}
	}()

	if err := job.Run(ctx); err != nil {
		log.Error(err, "scheduled job failed")
		return
	}
	log.Debug("scheduled job completed")
}

// Len reports the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.WithFields(map[string]any{"jobs": s.Len()}).Info("cron scheduler started")
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}
