// Package poller runs named fetch tasks on fixed intervals: an
// immediate first run, then a ticker, with guaranteed teardown via
// context or Stop. One poller owns one task; the TUI composes several.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/courtside/src/logging"
	"github.com/courtside/courtside/src/metrics"
)

// Task is one poll body. Errors are recorded, never propagated; the
// next tick simply tries again.
type Task func(ctx context.Context) error

// Status is a snapshot of a poller's recent history.
type Status struct {
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Poller drives one task.
type Poller struct {
	name     string
	interval time.Duration
	task     Task
	kick     chan struct{}

	mu      sync.Mutex
	status  Status
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New builds a poller; Start arms it.
func New(name string, interval time.Duration, task Task) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		task:     task,
		kick:     make(chan struct{}, 1),
	}
}

// Name returns the task name used in logs and metrics.
func (p *Poller) Name() string { return p.name }

// Interval returns the tick spacing.
func (p *Poller) Interval() time.Duration { return p.interval }

// Start launches the loop: one run now, then every interval until the
// context is cancelled or Stop is called. Calling Start on a running
// poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(runCtx)
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runOnce(ctx)
		case <-p.kick:
			// Manual refresh restarts the cadence so the next
			// scheduled tick keeps its full spacing.
			ticker.Reset(p.interval)
			p.runOnce(ctx)
		}
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	metrics.PollRuns.WithLabelValues(p.name).Inc()
	start := time.Now()
	err := p.task(ctx)
	metrics.PollDuration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())

	p.mu.Lock()
	defer p.mu.Unlock()

	p.status.LastAttempt = start
	if err == nil {
		p.status.LastSuccess = start
		p.status.LastError = nil
		p.status.ConsecutiveFailures = 0
		return
	}
	if ctx.Err() != nil {
		// Teardown mid-fetch is not a failure.
		return
	}
	p.status.LastError = err
	p.status.ConsecutiveFailures++
	metrics.PollFailures.WithLabelValues(p.name).Inc()
	logging.Warn("poll failed",
		"task", p.name,
		"consecutive", p.status.ConsecutiveFailures,
		"error", err)
}

// Refresh requests an out-of-band run. Coalesces while one is already
// pending; a no-op when the poller is not running.
func (p *Poller) Refresh() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Stop halts the loop and waits for any in-flight run to return.
// Safe to call twice or before Start.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.running = false
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Status returns a copy of the poller's bookkeeping.
func (p *Poller) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}
