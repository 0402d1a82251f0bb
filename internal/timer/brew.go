// Package timer implements the brew timer: a wall-clock stopwatch that maps
// elapsed time to the active pour of a schedule.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

// Option configures the brew timer.
type Option func(*BrewTimer)

// WithTickInterval sets how often the timer re-reads the clock while running.
func WithTickInterval(d time.Duration) Option {
	return func(t *BrewTimer) {
		if d > 0 {
			t.tickInterval = d
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c domain.Clock) Option {
	return func(t *BrewTimer) {
		if c != nil {
			t.clock = c
		}
	}
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// BrewTimer tracks elapsed brew time and the current pour step.
//
// Lifecycle: New, then Start/Reset any number of times, then Dispose. While
// running, a single goroutine ticks on tickInterval; Reset and Dispose stop it
// and return only after it has exited.
type BrewTimer struct {
	log          *logger.Logger
	clock        domain.Clock
	tickInterval time.Duration

	mu         sync.Mutex
	state      domain.TimerState
	totalSteps int
	epoch      time.Time
	gen        uint64 // incremented on every start and reset
	cancel     context.CancelFunc
	done       chan struct{}
	disposed   bool
}

// New creates an idle brew timer bounded to totalSteps pours.
func New(totalSteps int, log *logger.Logger, opts ...Option) *BrewTimer {
	t := &BrewTimer{
		log:          log,
		clock:        wallClock{},
		tickInterval: 100 * time.Millisecond,
		state:        domain.IdleTimerState(),
		totalSteps:   totalSteps,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins counting. Elapsed time already on the clock is kept, so the
// step index picks up where it was. Calling Start while running is a no-op.
func (t *BrewTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		t.log.Warn("start on disposed timer ignored")
		return
	}
	if t.state.Running() {
		t.log.Debug("timer already running (elapsed=%ds)", t.state.ElapsedSeconds)
		return
	}

	t.epoch = t.clock.Now().Add(-t.state.Elapsed())
	t.state.Status = domain.TimerRunning
	t.state.CurrentStepIndex = 0
	t.gen++

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.loop(ctx, t.gen, t.done)

	t.log.Info("timer started (tick=%s, steps=%d)", t.tickInterval, t.totalSteps)
}

// Reset stops the timer and clears elapsed time and the current step.
// No tick is applied after Reset returns.
func (t *BrewTimer) Reset() {
	t.mu.Lock()
	wasRunning := t.state.Running()
	t.state = domain.IdleTimerState()
	t.gen++
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	stop(cancel, done)

	if wasRunning {
		t.log.Info("timer reset")
	}
}

// Dispose stops the timer for good. Later Start calls are ignored.
func (t *BrewTimer) Dispose() {
	t.mu.Lock()
	t.disposed = true
	t.state = domain.IdleTimerState()
	t.gen++
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	stop(cancel, done)
	t.log.Debug("timer disposed")
}

// SetTotalSteps updates the step bound after the schedule changed. A running
// timer whose current step no longer exists moves to the new last step.
func (t *BrewTimer) SetTotalSteps(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalSteps = n
	if t.state.CurrentStepIndex >= n && n > 0 {
		t.log.Debug("schedule shrank to %d steps, clamping step %d", n, t.state.CurrentStepIndex)
		t.state.CurrentStepIndex = n - 1
	}
}

// State returns a snapshot of the timer.
func (t *BrewTimer) State() domain.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func stop(cancel context.CancelFunc, done chan struct{}) {
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// loop is the tick loop of one run.
func (t *BrewTimer) loop(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(gen)
		}
	}
}

// tick recomputes elapsed time and advances the step when its window opens.
// The step never moves past the last pour; the clock keeps counting.
func (t *BrewTimer) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen || !t.state.Running() {
		return
	}

	elapsed := int(t.clock.Now().Sub(t.epoch) / time.Second)
	t.state.ElapsedSeconds = elapsed

	next := elapsed / int(domain.StepWindow/time.Second)
	if next != t.state.CurrentStepIndex && next < t.totalSteps {
		t.log.Debug("step %d -> %d at %ds", t.state.CurrentStepIndex, next, elapsed)
		t.state.CurrentStepIndex = next
	}
}
