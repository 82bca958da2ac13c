package humanoid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// reportedPercentiles are the quantiles included in every Summary.
var reportedPercentiles = []int{50, 75, 90, 95}

// Summary describes a sample of intervals, in milliseconds.
type Summary struct {
	Count       int             `json:"count"`
	Mean        float64         `json:"mean"`
	Median      float64         `json:"median"`
	StdDev      float64         `json:"std"`
	Min         float64         `json:"min"`
	Max         float64         `json:"max"`
	Percentiles map[int]float64 `json:"percentiles,omitempty"`
}

// TimingStats is the diagnostic view of a model used for tuning. Distance
// fields are zero for the flat model, which has no spatial context.
type TimingStats struct {
	Mode          TimingMode `json:"mode"`
	TotalDistance float64    `json:"total_distance,omitempty"`
	OptimalPoints int        `json:"optimal_points,omitempty"`
	PointDensity  float64    `json:"point_density,omitempty"`
	Intervals     Summary    `json:"intervals"`
}

// Summarize computes the population statistics of samples. The input slice is
// not modified. An empty sample yields a zero Summary.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	s := Summary{
		Count:       len(sorted),
		Mean:        mean,
		StdDev:      std,
		Min:         floats.Min(sorted),
		Max:         floats.Max(sorted),
		Median:      quantile(sorted, 0.5),
		Percentiles: make(map[int]float64, len(reportedPercentiles)),
	}
	for _, p := range reportedPercentiles {
		s.Percentiles[p] = quantile(sorted, float64(p)/100.0)
	}
	return s
}

// quantile interpolates linearly between the closest ranks of sorted, so the
// median of an even sample is the mean of its two middle values.
// stat.Quantile offers no such estimator.
func quantile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
