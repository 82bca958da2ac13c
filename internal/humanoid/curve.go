package humanoid

import (
	"math"
	"time"

	"github.com/aquilax/go-perlin"
)

// CurveConfig tunes the default Bezier path generator.
type CurveConfig struct {
	// Points is the sample count used when the path is not distance adaptive.
	Points int
	// PerlinAmplitude is the peak lateral wobble in pixels.
	PerlinAmplitude float64
	// Knots is how many noise periods span one path.
	Knots float64
	// Seed seeds the noise field. Zero picks a time-based seed.
	Seed int64
}

// DefaultCurveConfig returns the generator settings used by NewClicker.
func DefaultCurveConfig() CurveConfig {
	return CurveConfig{Points: 100, PerlinAmplitude: 1.5, Knots: 2.0}
}

// BezierCurve generates human-like paths: a cubic Bezier with randomised
// control points, eased sampling and a tapering Perlin wobble.
type BezierCurve struct {
	cfg     CurveConfig
	rng     RandomSource
	density *DensityTable
	noise   *perlin.Perlin
}

// NewBezierCurve creates a generator. A nil density table selects the defaults.
func NewBezierCurve(cfg CurveConfig, rng RandomSource, density *DensityTable) *BezierCurve {
	if rng == nil {
		rng = newTimeSeededSource()
	}
	if density == nil {
		density = NewDensityTable(rng)
	}
	if cfg.Points < 2 {
		cfg.Points = DefaultCurveConfig().Points
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Standard Perlin noise parameters.
	alpha, beta, n := 2.0, 2.0, int32(3)
	return &BezierCurve{
		cfg:     cfg,
		rng:     rng,
		density: density,
		noise:   perlin.NewPerlin(alpha, beta, n, seed),
	}
}

// AdjustDensityForDistance rescales the point density used for
// distance-adaptive paths.
func (c *BezierCurve) AdjustDensityForDistance(totalDistance, factor float64) {
	c.density.AdjustDensityForDistance(totalDistance, factor)
}

// computeEaseInOutCubic provides a smooth acceleration and deceleration profile for movement.
func computeEaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Generate implements PathGenerator. Sub-pixel moves return just the two
// endpoints, which keeps zero-length moves away from the density table.
func (c *BezierCurve) Generate(start, end Vector2D, distanceAdaptive bool) []Vector2D {
	mainVec := end.Sub(start)
	dist := mainVec.Mag()
	if dist < 1.0 {
		return []Vector2D{start, end}
	}

	numSteps := c.cfg.Points
	if distanceAdaptive {
		numSteps = c.density.CalculateOptimalPointCount(dist)
	}
	if numSteps < 2 {
		numSteps = 2
	}

	mainDir := mainVec.Normalize()
	normal := mainDir.Perp()

	// Control points sit near the thirds of the chord, pushed sideways.
	p0, p3 := start, end
	p1 := start.Add(mainDir.Mul(dist * sampleUniform(c.rng, 0.2, 0.4))).
		Add(normal.Mul(dist * sampleUniform(c.rng, -0.25, 0.25)))
	p2 := start.Add(mainDir.Mul(dist * sampleUniform(c.rng, 0.6, 0.8))).
		Add(normal.Mul(dist * sampleUniform(c.rng, -0.25, 0.25)))

	phase := c.rng.Float64() * 10
	path := make([]Vector2D, numSteps)
	for i := 0; i < numSteps; i++ {
		t := computeEaseInOutCubic(float64(i) / float64(numSteps-1))
		// This is the cubic Bezier curve formula.
		omt := 1.0 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		p := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))

		// The wobble tapers to zero at both endpoints.
		wobble := c.noise.Noise1D(phase+t*c.cfg.Knots) * c.cfg.PerlinAmplitude * math.Sin(math.Pi*t)
		path[i] = p.Add(normal.Mul(wobble))
	}
	path[0], path[numSteps-1] = start, end
	return path
}
