package humanoid

// TierShape selects how a tier samples within its bounds.
type TierShape int

const (
	// ShapeUniform samples evenly in [Min, Max].
	ShapeUniform TierShape = iota
	// ShapeNormal samples N(Mean, StdDev) and clamps into [Min, Max].
	ShapeNormal
)

// Tier is one weighted branch of the flat interval mixture, in milliseconds.
type Tier struct {
	Name   string
	Weight float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Shape  TierShape
}

// DefaultTiers returns the stock mixture: mostly short normal intervals with
// a thin tail of progressively longer hesitations.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "normal", Weight: 85, Min: 15, Max: 45, Mean: 25, StdDev: 8, Shape: ShapeNormal},
		{Name: "medium", Weight: 8, Min: 45, Max: 80},
		{Name: "long", Weight: 4, Min: 80, Max: 150},
		{Name: "extraLong", Weight: 2, Min: 150, Max: 300},
		{Name: "veryLong", Weight: 1, Min: 300, Max: 800},
	}
}

// FlatIntervalModel draws context-free intervals from a weighted tier
// mixture. It is meant for callers without point data. It is not safe for
// concurrent use.
type FlatIntervalModel struct {
	rng      RandomSource
	tiers    []Tier
	thinking ThinkingPause
}

// NewFlatIntervalModel returns a model with the default tiers.
// A nil rng selects a time-seeded source.
func NewFlatIntervalModel(rng RandomSource) *FlatIntervalModel {
	if rng == nil {
		rng = newTimeSeededSource()
	}
	return &FlatIntervalModel{
		rng:      rng,
		tiers:    DefaultTiers(),
		thinking: ThinkingPause{Probability: 0.08, MinMs: 120, MaxMs: 500},
	}
}

// SetTiers replaces the mixture. The order of tiers is significant: the last
// tier absorbs every draw beyond the cumulative weight of the others.
func (m *FlatIntervalModel) SetTiers(tiers []Tier) {
	if len(tiers) == 0 {
		return
	}
	m.tiers = append([]Tier(nil), tiers...)
}

// Tiers returns a copy of the mixture.
func (m *FlatIntervalModel) Tiers() []Tier {
	return append([]Tier(nil), m.tiers...)
}

// Thinking returns the live thinking-pause configuration.
func (m *FlatIntervalModel) Thinking() *ThinkingPause { return &m.thinking }

// SetThinkingProbability clamps p into [0, 1].
func (m *FlatIntervalModel) SetThinkingProbability(p float64) {
	m.thinking.SetProbability(p)
}

// SetThinkingRange sets the pause bounds in milliseconds, forcing max >= min >= 0.
func (m *FlatIntervalModel) SetThinkingRange(minMs, maxMs float64) {
	m.thinking.SetRange(minMs, maxMs)
}

// selectTier walks the cumulative weights for a draw r in [0, 100).
func (m *FlatIntervalModel) selectTier(r float64) Tier {
	cumulative := 0.0
	for _, t := range m.tiers[:len(m.tiers)-1] {
		cumulative += t.Weight
		if r < cumulative {
			return t
		}
	}
	return m.tiers[len(m.tiers)-1]
}

// GetInterval returns the next delay in seconds.
func (m *FlatIntervalModel) GetInterval() float64 {
	if m.thinking.fires(m.rng) {
		return m.thinking.sample(m.rng)
	}

	t := m.selectTier(sampleUniform(m.rng, 0, 100))
	var interval float64
	switch t.Shape {
	case ShapeNormal:
		interval = clamp(sampleGaussian(m.rng, t.Mean, t.StdDev), t.Min, t.Max)
	default:
		interval = sampleUniform(m.rng, t.Min, t.Max)
	}
	return interval / 1000.0
}

// GetIntervals returns count independent draws.
func (m *FlatIntervalModel) GetIntervals(count int) []float64 {
	if count <= 0 {
		return nil
	}
	intervals := make([]float64, count)
	for i := range intervals {
		intervals[i] = m.GetInterval()
	}
	return intervals
}

// Schedule implements IntervalModel with one delay per point, including the last.
func (m *FlatIntervalModel) Schedule(points []Vector2D) []float64 {
	return m.GetIntervals(len(points))
}

// Stats summarises sampleCount draws in milliseconds. The distance argument
// is ignored and exists to satisfy IntervalModel.
func (m *FlatIntervalModel) Stats(_ float64, sampleCount int) TimingStats {
	samples := make([]float64, 0, max(0, sampleCount))
	for i := 0; i < sampleCount; i++ {
		samples = append(samples, m.GetInterval()*1000)
	}
	return TimingStats{Mode: ModeFlat, Intervals: Summarize(samples)}
}
