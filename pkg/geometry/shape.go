// Package geometry holds the ray-intersectable primitives.
package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// kEpsilon is the minimum accepted hit distance. It rejects the near-zero
// hits floating-point error produces at a ray's own origin.
const kEpsilon = 0.01

// Surface carries the appearance shared by all primitives: a flat colour
// and an optional material. The material is held by reference so many
// shapes can share one instance.
type Surface struct {
	Colour   core.Vec3
	Material core.Material
}

// SetColour sets the flat colour
func (s *Surface) SetColour(c core.Vec3) {
	s.Colour = c
}

// SetMaterial sets the shared material
func (s *Surface) SetMaterial(m core.Material) {
	s.Material = m
}

// record overwrites sr with a hit at distance t
func (s *Surface) record(sr *core.ShadeRec, ray core.Ray, t float64, normal core.Vec3) {
	sr.Normal = normal
	sr.Ray = ray
	sr.Colour = s.Colour
	sr.T = t
	sr.Material = s.Material
}
