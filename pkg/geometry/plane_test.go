package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Create a horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), core.NewVec3(0.5, 0.5, 0.5), nil)

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	sr := core.NewShadeRec(nil)
	if !plane.Hit(ray, sr) {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(sr.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", sr.T)
	}
	if !sr.HitPoint().Equals(core.NewVec3(0, 0, 0), 1e-9) {
		t.Errorf("Expected hit point at origin, got %v", sr.HitPoint())
	}
	if !sr.Normal.Equals(core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected unit normal (0,1,0), got %v", sr.Normal)
	}
}

func TestPlane_Hit_Misses(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.Vec3{}, nil)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))},
		{"plane behind origin", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))},
		{"within bias epsilon", core.NewRay(core.NewVec3(0, 0.001, 0), core.NewVec3(0, -1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := core.NewShadeRec(nil)
			if plane.Hit(tt.ray, sr) {
				t.Errorf("Expected miss, got hit at t=%f", sr.T)
			}
		})
	}
}

func TestPlane_Hit_BehindSphere(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), nil)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 0, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	sr := core.NewShadeRec(nil)
	sphere.Hit(ray, sr)
	if plane.Hit(ray, sr) {
		t.Error("Plane behind the sphere should not replace the nearer hit")
	}
	if sr.Colour != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected sphere colour, got %v", sr.Colour)
	}
}
