package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Surface
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices. The normal
// follows the right-hand rule over V0, V1, V2.
func NewTriangle(v0, v1, v2 core.Vec3, colour core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		Surface: Surface{Colour: colour, Material: material},
		V0:      v0,
		V1:      v1,
		V2:      v2,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit implements core.Shape using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, sr *core.ShadeRec) bool {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= kEpsilon || tHit >= sr.T {
		return false
	}

	t.record(sr, ray, tHit, t.normal)
	return true
}
