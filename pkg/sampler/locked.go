package sampler

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Locked serializes draws from a shared sampler. Set selection stays
// global: which goroutine receives which point of a set is unspecified.
type Locked struct {
	mu sync.Mutex
	s  core.Sampler
}

// NewLocked wraps s
func NewLocked(s core.Sampler) *Locked {
	return &Locked{s: s}
}

// SampleUnitSquare implements core.Sampler
func (l *Locked) SampleUnitSquare() core.Vec2 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.SampleUnitSquare()
}

// NumSamples implements core.Sampler
func (l *Locked) NumSamples() int {
	return l.s.NumSamples()
}
