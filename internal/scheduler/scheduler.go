package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Job is a unit of work run on a cron schedule.
type Job interface {
	Name() string
	Schedule() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on their cron schedules. A job that is still running
// when its next tick fires skips that tick.
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]Job
	mu   sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new scheduler. Schedules use the standard five cron fields
// or descriptors such as "@every 5m".
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		jobs:   make(map[string]Job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds a job to the scheduler
func (s *Scheduler) AddJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already exists", name)
	}

	_, err := s.cron.AddFunc(job.Schedule(), func() {
		s.runJob(job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}
	s.jobs[name] = job

	log.Info("Job added to scheduler", "job", name, "schedule", job.Schedule())
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	log.Info("Starting scheduler", "jobs", len(s.jobs))
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	log.Info("Stopping scheduler")
	s.cancel()
	<-s.cron.Stop().Done()
	log.Info("Scheduler stopped")
}

// RunJob runs a job immediately, outside of its schedule, and returns its error.
func (s *Scheduler) RunJob(name string) error {
	s.mu.RLock()
	job, exists := s.jobs[name]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("job %s not found", name)
	}
	return s.runJob(job)
}

func (s *Scheduler) runJob(job Job) error {
	start := time.Now()
	log.Debug("Job started", "job", job.Name())

	err := job.Run(s.ctx)
	if err != nil {
		log.Error("Job failed", "job", job.Name(), "duration", time.Since(start), "error", err)
		return err
	}
	log.Info("Job completed", "job", job.Name(), "duration", time.Since(start))
	return nil
}
