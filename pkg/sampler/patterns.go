package sampler

import (
	"math"

	"pgregory.net/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Regular places points at the centres of an n×n grid, n = floor(sqrt(N)).
// A non-square N is silently truncated to n² points per set.
type Regular struct{}

// Name implements Pattern
func (Regular) Name() string { return "regular" }

// SetSize implements Pattern
func (Regular) SetSize(numSamples int) int {
	n := int(math.Sqrt(float64(numSamples)))
	return n * n
}

// Generate implements Pattern. Every set is the same grid, p outer, q inner.
func (Regular) Generate(numSamples, numSets int, _ *rand.Rand) []core.Vec2 {
	n := int(math.Sqrt(float64(numSamples)))
	points := make([]core.Vec2, 0, n*n*numSets)
	for j := 0; j < numSets; j++ {
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				points = append(points, core.NewVec2(
					(float64(q)+0.5)/float64(n),
					(float64(p)+0.5)/float64(n),
				))
			}
		}
	}
	return points
}

// Random draws every point independently and uniformly from [0,1)²
type Random struct{}

// Name implements Pattern
func (Random) Name() string { return "random" }

// SetSize implements Pattern
func (Random) SetSize(numSamples int) int { return numSamples }

// Generate implements Pattern
func (Random) Generate(numSamples, numSets int, rng *rand.Rand) []core.Vec2 {
	points := make([]core.Vec2, 0, numSamples*numSets)
	for p := 0; p < numSets; p++ {
		for q := 0; q < numSamples; q++ {
			points = append(points, core.NewVec2(rng.Float64(), rng.Float64()))
		}
	}
	return points
}

// NewRegular creates a sampler over a regular grid pattern
func NewRegular(numSamples, numSets int, rng *rand.Rand) (*Sampler, error) {
	return New(Regular{}, numSamples, numSets, rng)
}

// NewRandom creates a sampler over uniformly random points
func NewRandom(numSamples, numSets int, rng *rand.Rand) (*Sampler, error) {
	return New(Random{}, numSamples, numSets, rng)
}

// PatternByName returns the pattern registered under name
func PatternByName(name string) (Pattern, bool) {
	switch name {
	case "regular":
		return Regular{}, true
	case "random":
		return Random{}, true
	}
	return nil, false
}
