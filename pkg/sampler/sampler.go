// Package sampler generates and doles out sample points on the unit square
// for anti-aliased pixel sampling.
//
// A Sampler pre-generates a number of independent sets of points plus one
// shuffled index table per set. Each run of NumSamples draws returns every
// point of one randomly chosen set exactly once, in permuted order, which
// decorrelates the pattern position from the sub-pixel position across
// neighbouring pixels.
package sampler

import (
	"github.com/pkg/errors"
	"pgregory.net/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern generates the sample sets for a Sampler
type Pattern interface {
	// Name identifies the pattern in logs and scene descriptions
	Name() string
	// SetSize returns how many points one set holds for a requested count
	SetSize(numSamples int) int
	// Generate returns numSets consecutive sets of SetSize(numSamples) points
	Generate(numSamples, numSets int, rng *rand.Rand) []core.Vec2
}

// Sampler hands out points from pre-generated sets. It is not safe for
// concurrent use; wrap it in a Locked to share it between goroutines.
type Sampler struct {
	pattern         Pattern
	numSamples      int
	numSets         int
	samples         []core.Vec2
	shuffledIndices []int
	count           uint64 // Draws so far; only ever increases
	jump            int    // Offset of the active set
	rng             *rand.Rand
}

// New builds a sampler for pattern with numSets sets of numSamples points.
// The pattern may reduce the per-set count (see Regular).
func New(pattern Pattern, numSamples, numSets int, rng *rand.Rand) (*Sampler, error) {
	if pattern == nil {
		return nil, errors.New("sampler: nil pattern")
	}
	if numSamples < 1 {
		return nil, errors.Errorf("sampler: numSamples must be >= 1, got %d", numSamples)
	}
	if numSets < 1 {
		return nil, errors.Errorf("sampler: numSets must be >= 1, got %d", numSets)
	}
	if rng == nil {
		rng = NewEntropyRNG()
	}

	s := &Sampler{
		pattern:    pattern,
		numSamples: pattern.SetSize(numSamples),
		numSets:    numSets,
		rng:        rng,
	}
	s.samples = pattern.Generate(numSamples, numSets, rng)
	if len(s.samples) != s.numSamples*s.numSets {
		return nil, errors.Errorf("sampler: %s pattern produced %d points, want %d",
			pattern.Name(), len(s.samples), s.numSamples*s.numSets)
	}
	s.setupShuffledIndices()
	return s, nil
}

// setupShuffledIndices appends one uniformly random permutation of
// [0, numSamples) per set
func (s *Sampler) setupShuffledIndices() {
	s.shuffledIndices = make([]int, 0, s.numSamples*s.numSets)
	for p := 0; p < s.numSets; p++ {
		s.shuffledIndices = append(s.shuffledIndices, s.rng.Perm(s.numSamples)...)
	}
}

// SampleUnitSquare returns the next sample point in [0,1)².
// A new set is picked every NumSamples draws.
func (s *Sampler) SampleUnitSquare() core.Vec2 {
	n := uint64(s.numSamples)
	if s.count%n == 0 {
		s.jump = s.rng.Intn(s.numSets) * s.numSamples
	}
	idx := s.jump + s.shuffledIndices[s.jump+int(s.count%n)]
	s.count++
	return s.samples[idx]
}

// NumSamples returns the number of points per set
func (s *Sampler) NumSamples() int {
	return s.numSamples
}

// NumSets returns the number of pre-generated sets
func (s *Sampler) NumSets() int {
	return s.numSets
}

// PatternName returns the name of the generating pattern
func (s *Sampler) PatternName() string {
	return s.pattern.Name()
}

// Count returns the number of draws made so far
func (s *Sampler) Count() uint64 {
	return s.count
}

// Points returns a copy of every generated point, set after set
func (s *Sampler) Points() []core.Vec2 {
	out := make([]core.Vec2, len(s.samples))
	copy(out, s.samples)
	return out
}

// NewRNG returns a generator with a fixed seed, for reproducible renders
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(seed)
}

// NewEntropyRNG returns a generator seeded from system entropy
func NewEntropyRNG() *rand.Rand {
	return rand.New()
}
