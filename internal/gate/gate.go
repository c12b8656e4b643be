// Package gate controls the periodic reconciliation task and its mutual
// exclusion with foreground mutations.
//
// A Gate is either running, in which case its task fires on every tick, or
// stopped. Foreground pipelines Stop the gate before touching any service and
// Start (or Restart, on failure) it when they are done.
package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// State is the scheduling state of a gate.
type State string

const (
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// ErrClosed is returned by Start once the gate has been closed.
var ErrClosed = errors.New("gate closed")

// Task is the periodic work a gate schedules.
type Task func(ctx context.Context) error

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces the wall clock driving the schedule.
func WithClock(c clock.Clock) Option {
	return func(g *Gate) {
		g.clock = c
	}
}

// Gate schedules a Task every interval while running. Runs never overlap.
type Gate struct {
	logger   zerolog.Logger
	interval time.Duration
	task     Task
	clock    clock.Clock

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	generation uint64
	stopCh     chan struct{}
	closed     bool

	runMu     sync.Mutex
	wg        sync.WaitGroup
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a stopped gate running task every interval once started.
func New(logger zerolog.Logger, interval time.Duration, task Task, opts ...Option) (*Gate, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if task == nil {
		return nil, errors.New("task is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := &Gate{
		logger:   logger.With().Str("component", "reconciliation-gate").Logger(),
		interval: interval,
		task:     task,
		clock:    clock.New(),
		ctx:      ctx,
		cancel:   cancel,
		state:    StateStopped,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// State returns the current scheduling state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Start arms the periodic schedule. Starting a running gate is a no-op.
func (g *Gate) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	if g.state == StateRunning {
		return nil
	}
	g.startLocked()
	g.logger.Debug().Uint64("generation", g.generation).Msg("reconciliation started")
	return nil
}

// Stop disarms the schedule and returns without waiting for a run in flight.
// A run is in flight once it has passed its armed check, which can happen just
// before Stop takes the lock; such a run completes after Stop returns. Runs
// checked after Stop returns never execute the task. Stop is idempotent.
func (g *Gate) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateStopped {
		return nil
	}
	g.stopLocked()
	g.logger.Debug().Uint64("generation", g.generation).Msg("reconciliation stopped")
	return nil
}

// Restart leaves the gate running whatever its current state, re-arming the
// schedule from now. It has no effect on a closed gate.
func (g *Gate) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	if g.state == StateRunning {
		g.stopLocked()
	}
	g.startLocked()
	g.logger.Info().Uint64("generation", g.generation).Msg("reconciliation restarted")
}

// Close stops the gate permanently, cancels an in-flight run and waits for the
// scheduler to exit.
func (g *Gate) Close() {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		if g.state == StateRunning {
			g.stopLocked()
		}
		g.mu.Unlock()

		g.cancel()
		g.wg.Wait()
		close(g.done)
		g.logger.Debug().Msg("reconciliation gate closed")
	})
}

// Done returns a channel closed once Close has completed.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// startLocked must be called with mu held.
func (g *Gate) startLocked() {
	g.state = StateRunning
	g.generation++
	g.stopCh = make(chan struct{})

	ticker := g.clock.Ticker(g.interval)
	g.wg.Add(1)
	go g.schedule(g.generation, ticker, g.stopCh)
}

// stopLocked must be called with mu held.
func (g *Gate) stopLocked() {
	g.state = StateStopped
	g.generation++
	close(g.stopCh)
	g.stopCh = nil
}

func (g *Gate) schedule(generation uint64, ticker *clock.Ticker, stopCh <-chan struct{}) {
	defer g.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-g.ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			g.run(generation)
		}
	}
}

// run executes the task if the schedule of generation is still armed. The
// check and the task are not atomic with respect to Stop.
func (g *Gate) run(generation uint64) {
	g.runMu.Lock()
	defer g.runMu.Unlock()

	g.mu.Lock()
	armed := !g.closed && g.state == StateRunning && g.generation == generation
	g.mu.Unlock()
	if !armed {
		return
	}

	start := g.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Interface("panic", r).Msg("reconciliation task panicked")
		}
	}()
	if err := g.task(g.ctx); err != nil {
		g.logger.Error().Err(err).Msg("reconciliation task failed")
		return
	}
	g.logger.Debug().Dur("duration", g.clock.Since(start)).Msg("reconciliation task completed")
}
