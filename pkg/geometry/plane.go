package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, reported as-is for hits from either side
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, colour core.Vec3, material core.Material) *Plane {
	return &Plane{
		Surface: Surface{Colour: colour, Material: material},
		Point:   point,
		Normal:  normal.Normalize(),
	}
}

// Hit implements core.Shape
func (p *Plane) Hit(ray core.Ray, sr *core.ShadeRec) bool {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never meet the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= kEpsilon || t >= sr.T {
		return false
	}

	p.record(sr, ray, t, p.Normal)
	return true
}
