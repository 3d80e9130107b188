package desk

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Default polling cadences, matching the standard frontend: ticket
// tables refresh every 3 seconds, an open chat every 2 seconds.
const (
	DefaultListInterval = 3 * time.Second
	DefaultChatInterval = 2 * time.Second
)

// PollFunc runs one refresh of a view surface. Errors are swallowed;
// the next tick retries.
type PollFunc func(ctx context.Context) error

// ViewPoller schedules background refreshes for view surfaces. Each
// surface holds at most one job: starting a surface removes any job it
// already has before scheduling the new one, so switching views never
// leaves a stale poll running. Singleton mode keeps a slow poll from
// overlapping with the next tick.
type ViewPoller struct {
	scheduler gocron.Scheduler

	mu   sync.Mutex
	jobs map[string]gocron.Job
}

func NewViewPoller() (*ViewPoller, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &ViewPoller{
		scheduler: scheduler,
		jobs:      make(map[string]gocron.Job),
	}, nil
}

// StartSurface begins polling a named surface at the given interval.
// The first poll fires immediately. Any existing job for the surface is
// removed synchronously first.
func (p *ViewPoller) StartSurface(surface string, interval time.Duration, poll PollFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.jobs[surface]; ok {
		_ = p.scheduler.RemoveJob(existing.ID())
		delete(p.jobs, surface)
	}

	job, err := p.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			// Poll failures are retried on the next tick, never surfaced.
			_ = poll(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(surface),
	)
	if err != nil {
		return err
	}

	p.jobs[surface] = job
	return nil
}

// StopSurface removes the job for a surface, if any.
func (p *ViewPoller) StopSurface(surface string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if job, ok := p.jobs[surface]; ok {
		_ = p.scheduler.RemoveJob(job.ID())
		delete(p.jobs, surface)
	}
}

// Surfaces returns the names of surfaces currently being polled.
func (p *ViewPoller) Surfaces() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.jobs))
	for name := range p.jobs {
		names = append(names, name)
	}
	return names
}

// Start begins executing scheduled polls.
func (p *ViewPoller) Start() {
	p.scheduler.Start()
}

// Stop shuts the scheduler down and waits for running polls to finish.
func (p *ViewPoller) Stop() error {
	p.mu.Lock()
	p.jobs = make(map[string]gocron.Job)
	p.mu.Unlock()

	return p.scheduler.Shutdown()
}
