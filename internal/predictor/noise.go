package predictor

import (
	"math/rand"
	"time"
)

// NoiseSource draws zero-mean gaussian perturbations for the synthetic models.
// Implementations must be deterministic for a fixed seed so tests can pin
// exact forecasts.
type NoiseSource interface {
	Normal(stddev float64) float64
}

type gaussianSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a NoiseSource that reproduces the same draw
// sequence for the same seed.
func NewSeededSource(seed int64) NoiseSource {
	return &gaussianSource{rng: rand.New(rand.NewSource(seed))}
}

// NewClockSource returns a NoiseSource seeded from the wall clock.
func NewClockSource() NoiseSource {
	return NewSeededSource(time.Now().UnixNano())
}

func (g *gaussianSource) Normal(stddev float64) float64 {
	return g.rng.NormFloat64() * stddev
}

// ZeroSource draws no noise. Useful for tests that pin the deterministic
// shape of the forecast.
type ZeroSource struct{}

func (ZeroSource) Normal(float64) float64 { return 0 }
