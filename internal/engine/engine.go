// Package engine ties brew parameters, the derived pour schedule and the brew
// timer together. Every parameter change recomputes the schedule before the
// setter returns.
package engine

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
	"github.com/hammamikhairi/ottobrew/internal/schedule"
	"github.com/hammamikhairi/ottobrew/internal/timer"
)

// DefaultParams are used when no defaults are configured: 20g at 1:15,
// standard taste, strong.
var DefaultParams = domain.BrewParameters{
	CoffeeGrams: 20,
	Ratio:       15,
	Taste:       domain.TasteStandard,
	Strength:    domain.StrengthStrong,
}

// Option configures the engine.
type Option func(*Engine)

// WithDefaults sets the parameters the engine starts with. Values are clamped.
func WithDefaults(p domain.BrewParameters) Option {
	return func(e *Engine) {
		e.params = clamp(p)
	}
}

// WithTimerOptions passes options through to the brew timer.
func WithTimerOptions(opts ...timer.Option) Option {
	return func(e *Engine) {
		e.timerOpts = append(e.timerOpts, opts...)
	}
}

// Snapshot is everything a renderer needs at one instant.
type Snapshot struct {
	Params   domain.BrewParameters
	Schedule domain.PourSchedule
	Timer    domain.TimerState
	RunID    string // empty until the first start
}

// Engine owns the current brew. Safe for concurrent use.
type Engine struct {
	presets   domain.PresetSource
	log       *logger.Logger
	timerOpts []timer.Option

	mu       sync.RWMutex
	params   domain.BrewParameters
	schedule domain.PourSchedule
	runID    string

	timer *timer.BrewTimer
}

// New creates an engine with the given preset source and options.
func New(presets domain.PresetSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		presets: presets,
		log:     log,
		params:  DefaultParams,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.schedule = schedule.Compute(e.params)
	e.timer = timer.New(e.schedule.Len(), log.Named("timer"), e.timerOpts...)
	return e
}

// Params returns the current parameters.
func (e *Engine) Params() domain.BrewParameters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params
}

// Schedule returns the schedule for the current parameters.
func (e *Engine) Schedule() domain.PourSchedule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule
}

// Snapshot returns parameters, schedule and timer state together.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	snap := Snapshot{
		Params:   e.params,
		Schedule: e.schedule,
		RunID:    e.runID,
	}
	e.mu.RUnlock()
	snap.Timer = e.timer.State()
	return snap
}

// SetParams replaces all parameters at once.
func (e *Engine) SetParams(p domain.BrewParameters) domain.BrewParameters {
	return e.update(func(cur *domain.BrewParameters) { *cur = p })
}

// SetCoffee sets the coffee dose in grams, clamped to the supported range.
func (e *Engine) SetCoffee(grams float64) domain.BrewParameters {
	return e.update(func(cur *domain.BrewParameters) { cur.CoffeeGrams = grams })
}

// SetRatio sets the water ratio, clamped to 1:13 .. 1:19.
func (e *Engine) SetRatio(ratio int) domain.BrewParameters {
	return e.update(func(cur *domain.BrewParameters) { cur.Ratio = ratio })
}

// SetTaste sets the taste profile by name.
func (e *Engine) SetTaste(name string) (domain.BrewParameters, error) {
	taste, err := domain.TasteFromString(name)
	if err != nil {
		return e.Params(), fmt.Errorf("taste %q: %w", name, err)
	}
	return e.update(func(cur *domain.BrewParameters) { cur.Taste = taste }), nil
}

// SetStrength sets the strength by name.
func (e *Engine) SetStrength(name string) (domain.BrewParameters, error) {
	strength, err := domain.StrengthFromString(name)
	if err != nil {
		return e.Params(), fmt.Errorf("strength %q: %w", name, err)
	}
	return e.update(func(cur *domain.BrewParameters) { cur.Strength = strength }), nil
}

// ApplyPreset loads the parameters of a preset.
func (e *Engine) ApplyPreset(ctx context.Context, id string) (*domain.Preset, error) {
	p, err := e.presets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting preset: %w", err)
	}
	e.SetParams(p.Params)
	e.log.Info("applied preset %q", p.ID)
	return p, nil
}

// ListPresets returns all available presets.
func (e *Engine) ListPresets(ctx context.Context) ([]domain.PresetSummary, error) {
	return e.presets.List(ctx)
}

// update applies fn to the parameters, clamps the result and recomputes the
// schedule while holding the lock, then tells the timer the new step count.
func (e *Engine) update(fn func(*domain.BrewParameters)) domain.BrewParameters {
	e.mu.Lock()
	next := e.params
	fn(&next)
	next = clamp(next)
	e.params = next
	e.schedule = schedule.Compute(next)
	steps, final := e.schedule.Len(), e.schedule.FinalGrams()
	e.mu.Unlock()

	e.timer.SetTotalSteps(steps)
	e.log.Debug("params: %.1fg 1:%d %s %s -> %d pours, %dg",
		next.CoffeeGrams, next.Ratio, next.Taste, next.Strength, steps, final)
	return next
}

// Start starts the brew timer. A new run ID is assigned when the timer was
// idle; starting a running brew changes nothing.
func (e *Engine) Start() domain.TimerState {
	if st := e.timer.State(); !st.Running() {
		id := newRunID()
		e.mu.Lock()
		e.runID = id
		e.mu.Unlock()
		e.log.Info("brew %s started (%d pours)", id, e.Schedule().Len())
	}
	e.timer.Start()
	return e.timer.State()
}

// Reset stops the brew timer and clears it.
func (e *Engine) Reset() domain.TimerState {
	e.timer.Reset()
	e.mu.RLock()
	id := e.runID
	e.mu.RUnlock()
	if id != "" {
		e.log.Info("brew %s reset", id)
	}
	return e.timer.State()
}

// Close disposes the brew timer. The engine must not be started afterwards.
func (e *Engine) Close() {
	e.timer.Dispose()
}

// clamp bounds parameters to what the calculator accepts. NaN and negative
// doses become zero; unknown enum values fall back to the defaults.
func clamp(p domain.BrewParameters) domain.BrewParameters {
	if math.IsNaN(p.CoffeeGrams) || p.CoffeeGrams < domain.MinCoffeeGrams {
		p.CoffeeGrams = domain.MinCoffeeGrams
	}
	if p.CoffeeGrams > domain.MaxCoffeeGrams {
		p.CoffeeGrams = domain.MaxCoffeeGrams
	}
	if p.Ratio < domain.MinRatio {
		p.Ratio = domain.MinRatio
	}
	if p.Ratio > domain.MaxRatio {
		p.Ratio = domain.MaxRatio
	}
	if p.Taste < domain.TasteStandard || p.Taste > domain.TasteBright {
		p.Taste = domain.TasteStandard
	}
	if p.Strength < domain.StrengthLight || p.Strength > domain.StrengthStronger {
		p.Strength = domain.StrengthStrong
	}
	return p
}
