package humanoid

const (
	// minPathPoints is the floor applied to every optimal point count.
	minPathPoints = 20
	// maxPointsPerUnit caps how densely a path may be sampled.
	maxPointsPerUnit = 0.8
	// fallbackDensity is used when no bucket covers the requested distance.
	fallbackDensity = 0.25
)

// DensityBucket maps total path distances in [Lower, Upper) to a sampling
// density in points per unit distance, jittered by +/- Variation.
type DensityBucket struct {
	Lower, Upper float64
	BaseDensity  float64
	Variation    float64
}

type densityParams struct {
	base, variation float64
}

// DefaultDensityBuckets returns the stock distance-to-density table.
// Short moves are sampled densely, long sweeps sparsely.
func DefaultDensityBuckets() []DensityBucket {
	return []DensityBucket{
		{Lower: 0, Upper: 100, BaseDensity: 0.45, Variation: 0.08},
		{Lower: 100, Upper: 300, BaseDensity: 0.35, Variation: 0.06},
		{Lower: 300, Upper: 600, BaseDensity: 0.25, Variation: 0.05},
		{Lower: 600, Upper: Unbounded(), BaseDensity: 0.15, Variation: 0.03},
	}
}

// DensityTable turns a total path distance into a target number of path points.
// It is not safe for concurrent use while AdjustDensityForDistance is called.
type DensityTable struct {
	rng     RandomSource
	buckets rangeTable[densityParams]
}

// NewDensityTable builds a table from buckets given in ascending order.
// With no buckets the default table is used.
func NewDensityTable(rng RandomSource, buckets ...DensityBucket) *DensityTable {
	if rng == nil {
		rng = newTimeSeededSource()
	}
	if len(buckets) == 0 {
		buckets = DefaultDensityBuckets()
	}
	t := &DensityTable{rng: rng, buckets: make(rangeTable[densityParams], 0, len(buckets))}
	for _, b := range buckets {
		t.buckets = append(t.buckets, bucket[densityParams]{
			Lower: b.Lower,
			Upper: b.Upper,
			Value: densityParams{base: b.BaseDensity, variation: b.Variation},
		})
	}
	return t
}

// CalculateOptimalPointCount returns how many points a path of totalDistance
// should be sampled with: never fewer than 20 and never more than 0.8 per unit
// distance. The cap wins over the floor, so callers must not pass a
// non-positive distance.
func (t *DensityTable) CalculateOptimalPointCount(totalDistance float64) int {
	density := fallbackDensity
	if i := t.buckets.lookup(totalDistance); i >= 0 {
		p := t.buckets[i].Value
		density = p.base + sampleUniform(t.rng, -p.variation, p.variation)
	}

	count := int(totalDistance * density)
	if count < minPathPoints {
		count = minPathPoints
	}
	if limit := int(totalDistance * maxPointsPerUnit); count > limit {
		count = limit
	}
	return count
}

// AdjustDensityForDistance permanently rescales the base density of the bucket
// owning totalDistance. A factor above 1 samples denser, below 1 sparser.
func (t *DensityTable) AdjustDensityForDistance(totalDistance, factor float64) {
	if i := t.buckets.lookup(totalDistance); i >= 0 {
		t.buckets[i].Value.base *= factor
	}
}

// Buckets returns a copy of the current table.
func (t *DensityTable) Buckets() []DensityBucket {
	out := make([]DensityBucket, len(t.buckets))
	for i, b := range t.buckets {
		out[i] = DensityBucket{Lower: b.Lower, Upper: b.Upper, BaseDensity: b.Value.base, Variation: b.Value.variation}
	}
	return out
}
