package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, core.NewVec3(0.5, 0.5, 0.5), nil)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name: "Ray hits triangle center",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -1), // origin
				core.NewVec3(0, 0, 1),        // direction (toward +Z)
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Ray hits triangle edge",
			ray: core.NewRay(
				core.NewVec3(0.5, 0, -1), // origin (on edge between v0 and v1)
				core.NewVec3(0, 0, 1),    // direction (toward +Z)
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Ray misses triangle",
			ray: core.NewRay(
				core.NewVec3(1, 1, -1), // origin (outside triangle)
				core.NewVec3(0, 0, 1),  // direction (toward +Z)
			),
			shouldHit: false,
		},
		{
			name: "Ray parallel to triangle",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 0), // origin (in triangle plane)
				core.NewVec3(1, 0, 0),       // direction (parallel to plane)
			),
			shouldHit: false,
		},
		{
			name: "Ray hits from behind",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 1), // origin (behind triangle)
				core.NewVec3(0, 0, -1),      // direction (toward -Z)
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Hit closer than bias epsilon",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 0.005),
				core.NewVec3(0, 0, -1),
			),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := core.NewShadeRec(nil)
			isHit := triangle.Hit(tt.ray, sr)

			if isHit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
				return
			}

			if !tt.shouldHit {
				if !math.IsInf(sr.T, 1) {
					t.Errorf("Missed hit should leave T at +Inf, got %f", sr.T)
				}
				return
			}

			if math.Abs(sr.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, sr.T)
			}
			if sr.Normal != core.NewVec3(0, 0, 1) {
				t.Errorf("Expected normal (0,0,1), got %v", sr.Normal)
			}
			if sr.Colour != triangle.Colour {
				t.Errorf("Expected colour %v, got %v", triangle.Colour, sr.Colour)
			}
		})
	}
}

func TestTriangle_RespectsNearestHit(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	sr := core.NewShadeRec(nil)
	sr.T = 3
	if triangle.Hit(ray, sr) {
		t.Error("Triangle at t=5 should not replace a hit at t=3")
	}

	sr.T = 10
	if !triangle.Hit(ray, sr) || sr.T != 5 {
		t.Errorf("Expected hit at t=5, got T=%f", sr.T)
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 2), core.NewVec3(3, 0, 0),
		core.Vec3{}, nil)

	if n := triangle.Normal(); n != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0,1,0), got %v", n)
	}
}
