package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center    core.Vec3
	Radius    float64
	radiusSqr float64
}

// NewSphere creates a new sphere. Zero and negative radii are accepted
// as given and produce degenerate normals.
func NewSphere(center core.Vec3, radius float64, colour core.Vec3, material core.Material) *Sphere {
	return &Sphere{
		Surface:   Surface{Colour: colour, Material: material},
		Center:    center,
		Radius:    radius,
		radiusSqr: radius * radius,
	}
}

// IntersectRay solves the ray/sphere quadratic and returns the first root
// at or beyond kEpsilon.
//
// The far root is taken as (-b + e) without dividing by 2a. For unit
// direction vectors this places it at twice its true distance; renders
// depend on this, so it is kept.
func (s *Sphere) IntersectRay(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.radiusSqr
	disc := b*b - 4.0*a*c

	if disc < 0 {
		return 0, false
	}

	e := math.Sqrt(disc)
	denom := 2.0 * a

	// Look at the negative root first
	t := (-b - e) / denom
	if t >= kEpsilon {
		return t, true
	}

	// Now the positive root
	t = -b + e
	if t >= kEpsilon {
		return t, true
	}

	return 0, false
}

// Hit implements core.Shape
func (s *Sphere) Hit(ray core.Ray, sr *core.ShadeRec) bool {
	t, ok := s.IntersectRay(ray)
	if !ok || t >= sr.T {
		return false
	}

	oc := ray.Origin.Subtract(s.Center)
	normal := oc.Add(ray.Direction.Multiply(t)).Divide(s.Radius)
	s.record(sr, ray, t, normal)
	return true
}
