// internal/humanoid/humanoid.go
package humanoid

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNoPath is returned when a path generator yields no points.
var ErrNoPath = errors.New("humanoid: path generator returned no points")

var _ Controller = (*Clicker)(nil)

// Clicker plays pointer paths back with human-plausible timing.
type Clicker struct {
	// mu serialises every public method. A Move holds it for its whole
	// duration, so reconfiguration waits for the move to finish.
	mu        sync.Mutex
	logger    *zap.Logger
	executor  Executor
	generator PathGenerator
	rng       RandomSource

	humanTiming      bool
	distanceBased    bool
	fallbackDuration time.Duration

	// model is the active interval model. It survives disabling human timing
	// so that re-enabling resumes with the same settings.
	model IntervalModel

	thinking    ThinkingOverride
	adjustments []DensityAdjustment
}

// New creates a Clicker. A nil generator selects a BezierCurve built from
// config.Curve.
func New(config Config, logger *zap.Logger, executor Executor, generator PathGenerator) *Clicker {
	if logger == nil {
		logger = zap.NewNop()
	}
	var rng RandomSource = config.Rng
	if config.Rng == nil {
		rng = newTimeSeededSource()
	}
	if generator == nil {
		generator = NewBezierCurve(config.Curve, rng, nil)
	}

	c := &Clicker{
		logger:           logger.Named("humanoid"),
		executor:         executor,
		generator:        generator,
		rng:              rng,
		humanTiming:      config.HumanTiming,
		distanceBased:    config.DistanceBased,
		fallbackDuration: config.FallbackDuration,
		thinking:         config.Thinking,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.humanTiming {
		c.rebuildModel()
	}
	for _, adj := range config.DensityAdjustments {
		c.adjustDensity(adj.Distance, adj.Factor)
	}
	return c
}

// NewTestClicker creates a Clicker with deterministic dependencies for testing.
func NewTestClicker(executor Executor, seed int64) *Clicker {
	config := DefaultConfig()
	config.Rng = rand.New(rand.NewSource(seed))
	config.Curve.Seed = seed
	return New(config, zap.NewNop(), executor, nil)
}

// rebuildModel instantiates a fresh model for the current preference and
// replays the recorded overrides onto it. Caller holds the lock.
func (c *Clicker) rebuildModel() {
	if c.distanceBased {
		m := NewDistanceIntervalModel(c.rng)
		for _, adj := range c.adjustments {
			m.AdjustDensityForDistance(adj.Distance, adj.Factor)
		}
		c.model = m
	} else {
		c.model = NewFlatIntervalModel(c.rng)
	}
	c.applyThinking()
	c.logger.Debug("Interval model instantiated", zap.String("mode", string(c.mode())))
}

// applyThinking pushes the recorded thinking overrides into the live model.
func (c *Clicker) applyThinking() {
	if c.model == nil {
		return
	}
	tp := c.model.Thinking()
	prob, minMs, maxMs := tp.Probability, tp.MinMs, tp.MaxMs
	if c.thinking.Probability != nil {
		prob = *c.thinking.Probability
	}
	if c.thinking.MinMs != nil {
		minMs = *c.thinking.MinMs
	}
	if c.thinking.MaxMs != nil {
		maxMs = *c.thinking.MaxMs
	}
	tp.Set(prob, minMs, maxMs)
}

func (c *Clicker) mode() TimingMode {
	if !c.humanTiming || c.model == nil {
		return ModeDisabled
	}
	if _, ok := c.model.(*DistanceIntervalModel); ok {
		return ModeDistanceAdaptive
	}
	return ModeFlat
}

// Mode reports the active timing variant.
func (c *Clicker) Mode() TimingMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode()
}

// EnableHumanTiming toggles modelled delays. Enabling keeps the retained
// model when it matches the distance preference and builds a new one otherwise.
func (c *Clicker) EnableHumanTiming(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.humanTiming = enabled
	if enabled && !c.modelMatchesPreference() {
		c.rebuildModel()
	}
}

// modelMatchesPreference reports whether the retained model is the one the
// distance preference selects. Caller holds the lock.
func (c *Clicker) modelMatchesPreference() bool {
	_, distance := c.model.(*DistanceIntervalModel)
	return c.model != nil && distance == c.distanceBased
}

// EnableDistanceBasedTiming sets the model preference. With human timing on,
// the matching model is re-instantiated.
func (c *Clicker) EnableDistanceBasedTiming(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distanceBased = enabled
	if c.humanTiming {
		c.rebuildModel()
	}
}

// SetMode switches to the given variant in one call. Switching to the mode
// already active keeps the current model.
func (c *Clicker) SetMode(mode TimingMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mode == c.mode() {
		return
	}
	switch mode {
	case ModeDisabled:
		c.humanTiming = false
		return
	case ModeDistanceAdaptive:
		c.distanceBased = true
	case ModeFlat:
		c.distanceBased = false
	default:
		c.logger.Warn("Ignoring unknown timing mode", zap.String("mode", string(mode)))
		return
	}
	c.humanTiming = true
	if c.mode() != mode {
		c.rebuildModel()
	}
}

// SetThinkingProbability sets the thinking-pause probability for the active
// model and every model built after it.
func (c *Clicker) SetThinkingProbability(probability float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.thinking.Probability = &probability
	c.applyThinking()
}

// SetThinkingRange sets the thinking-pause bounds in milliseconds for the
// active model and every model built after it.
func (c *Clicker) SetThinkingRange(minMs, maxMs float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.thinking.MinMs, c.thinking.MaxMs = &minMs, &maxMs
	c.applyThinking()
}

// AdjustDensity rescales the point density for paths around totalDistance.
// The adjustment is recorded and replayed onto distance-adaptive models built
// later. It reports whether a distance-adaptive model was active to take it now.
func (c *Clicker) AdjustDensity(totalDistance, factor float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adjustDensity(totalDistance, factor)
}

func (c *Clicker) adjustDensity(totalDistance, factor float64) bool {
	c.adjustments = append(c.adjustments, DensityAdjustment{Distance: totalDistance, Factor: factor})
	if g, ok := c.generator.(interface{ AdjustDensityForDistance(float64, float64) }); ok {
		g.AdjustDensityForDistance(totalDistance, factor)
	}
	m, ok := c.model.(*DistanceIntervalModel)
	if !ok {
		return false
	}
	m.AdjustDensityForDistance(totalDistance, factor)
	return c.humanTiming
}

// TimingStats samples the active model for tuning. It reports false when
// human timing is disabled.
func (c *Clicker) TimingStats(totalDistance float64, sampleCount int) (*TimingStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode() == ModeDisabled {
		return nil, false
	}
	stats := c.model.Stats(totalDistance, sampleCount)
	return &stats, true
}
