package humanoid

import "math"

const (
	// stationaryStep is the step length below which the pointer counts as at rest.
	// Thinking pauses only fire at rest.
	stationaryStep = 0.5
	// uniformShapeVariation is the variation above which a bucket samples
	// uniformly instead of from a clamped normal.
	uniformShapeVariation = 8.0
	minStepIntervalMs     = 3.0
	maxStepIntervalMs     = 50.0
)

// IntervalBucket holds the step timing parameters for step distances in
// [Lower, Upper). Weight records the bucket's share of observed steps; it is
// informational and does not influence sampling.
type IntervalBucket struct {
	Lower, Upper float64
	BaseMs       float64
	VariationMs  float64
	Weight       float64
}

type intervalParams struct {
	baseMs, variationMs, weight float64
}

// DefaultIntervalBuckets returns the stock step-distance table. Tiny steps
// are slow and jittery, long steps fast and steady.
func DefaultIntervalBuckets() []IntervalBucket {
	return []IntervalBucket{
		{Lower: 0, Upper: 0.5, BaseMs: 15, VariationMs: 12, Weight: 0.10},
		{Lower: 0.5, Upper: 1.5, BaseMs: 13, VariationMs: 10, Weight: 0.15},
		{Lower: 1.5, Upper: 2.5, BaseMs: 11, VariationMs: 9, Weight: 0.20},
		{Lower: 2.5, Upper: 4, BaseMs: 9, VariationMs: 7, Weight: 0.25},
		{Lower: 4, Upper: 6, BaseMs: 8, VariationMs: 6, Weight: 0.15},
		{Lower: 6, Upper: 10, BaseMs: 7, VariationMs: 5, Weight: 0.10},
		{Lower: 10, Upper: 20, BaseMs: 6, VariationMs: 4, Weight: 0.04},
		{Lower: 20, Upper: 100, BaseMs: 5, VariationMs: 3, Weight: 0.01},
	}
}

// DistanceIntervalModel maps the length of each path step to the delay that
// follows it. It owns the DensityTable that sizes distance-adaptive paths.
// It is not safe for concurrent use.
type DistanceIntervalModel struct {
	rng      RandomSource
	density  *DensityTable
	buckets  rangeTable[intervalParams]
	thinking ThinkingPause
}

// NewDistanceIntervalModel returns a model with the default tables.
// A nil rng selects a time-seeded source.
func NewDistanceIntervalModel(rng RandomSource) *DistanceIntervalModel {
	if rng == nil {
		rng = newTimeSeededSource()
	}
	m := &DistanceIntervalModel{
		rng:      rng,
		density:  NewDensityTable(rng),
		thinking: ThinkingPause{Probability: 0.08, MinMs: 150, MaxMs: 250},
	}
	m.SetIntervalBuckets(DefaultIntervalBuckets())
	return m
}

// SetIntervalBuckets replaces the step table. Buckets must be ascending.
func (m *DistanceIntervalModel) SetIntervalBuckets(buckets []IntervalBucket) {
	m.buckets = make(rangeTable[intervalParams], 0, len(buckets))
	for _, b := range buckets {
		m.buckets = append(m.buckets, bucket[intervalParams]{
			Lower: b.Lower,
			Upper: b.Upper,
			Value: intervalParams{baseMs: b.BaseMs, variationMs: b.VariationMs, weight: b.Weight},
		})
	}
}

// IntervalBuckets returns a copy of the current step table.
func (m *DistanceIntervalModel) IntervalBuckets() []IntervalBucket {
	out := make([]IntervalBucket, len(m.buckets))
	for i, b := range m.buckets {
		out[i] = IntervalBucket{
			Lower: b.Lower, Upper: b.Upper,
			BaseMs: b.Value.baseMs, VariationMs: b.Value.variationMs, Weight: b.Value.weight,
		}
	}
	return out
}

// Density exposes the owned point-count table.
func (m *DistanceIntervalModel) Density() *DensityTable { return m.density }

// Thinking returns the live thinking-pause configuration.
func (m *DistanceIntervalModel) Thinking() *ThinkingPause { return &m.thinking }

// SetThinkingParameters clamps and applies all thinking-pause settings at once.
func (m *DistanceIntervalModel) SetThinkingParameters(probability, minMs, maxMs float64) {
	m.thinking.Set(probability, minMs, maxMs)
}

// CalculateOptimalPointCount delegates to the owned DensityTable.
func (m *DistanceIntervalModel) CalculateOptimalPointCount(totalDistance float64) int {
	return m.density.CalculateOptimalPointCount(totalDistance)
}

// AdjustDensityForDistance delegates to the owned DensityTable.
func (m *DistanceIntervalModel) AdjustDensityForDistance(totalDistance, factor float64) {
	m.density.AdjustDensityForDistance(totalDistance, factor)
}

// GetIntervalForStepDistance returns the delay in seconds that should follow
// a step of the given length.
func (m *DistanceIntervalModel) GetIntervalForStepDistance(stepDistance float64) float64 {
	if stepDistance < stationaryStep && m.thinking.fires(m.rng) {
		return m.thinking.sample(m.rng)
	}

	i := m.buckets.lookup(stepDistance)
	if i < 0 {
		return sampleUniform(m.rng, 8, 15) / 1000.0
	}
	p := m.buckets[i].Value

	var interval float64
	if p.variationMs > uniformShapeVariation {
		interval = sampleUniform(m.rng, p.baseMs-p.variationMs/2, p.baseMs+p.variationMs/2)
		interval = math.Max(minStepIntervalMs, interval)
	} else {
		// The clamp skews mass onto the bounds; that skew is part of the profile.
		interval = sampleGaussian(m.rng, p.baseMs, p.variationMs*1.5)
		interval = clamp(interval, minStepIntervalMs, maxStepIntervalMs)
	}

	interval *= sampleUniform(m.rng, 0.8, 1.2)
	return interval / 1000.0
}

// GenerateIntervalsForPoints returns one delay per consecutive pair of
// points, or nil when there are fewer than two.
func (m *DistanceIntervalModel) GenerateIntervalsForPoints(points []Vector2D) []float64 {
	if len(points) < 2 {
		return nil
	}
	intervals := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		intervals = append(intervals, m.GetIntervalForStepDistance(points[i-1].Dist(points[i])))
	}
	return intervals
}

// Schedule implements IntervalModel.
func (m *DistanceIntervalModel) Schedule(points []Vector2D) []float64 {
	return m.GenerateIntervalsForPoints(points)
}

// Stats samples sampleCount intervals for steps scattered around the average
// step length of an optimally sampled path of totalDistance.
func (m *DistanceIntervalModel) Stats(totalDistance float64, sampleCount int) TimingStats {
	points := m.CalculateOptimalPointCount(totalDistance)
	avgStep := totalDistance / float64(max(1, points-1))

	samples := make([]float64, 0, max(0, sampleCount))
	for i := 0; i < sampleCount; i++ {
		step := avgStep * sampleUniform(m.rng, 0.5, 2.0)
		samples = append(samples, m.GetIntervalForStepDistance(step)*1000)
	}

	stats := TimingStats{
		Mode:          ModeDistanceAdaptive,
		TotalDistance: totalDistance,
		OptimalPoints: points,
		Intervals:     Summarize(samples),
	}
	if totalDistance != 0 {
		stats.PointDensity = float64(points) / totalDistance
	}
	return stats
}
