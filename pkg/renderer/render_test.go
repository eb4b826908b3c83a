package renderer

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

var (
	red  = core.NewVec3(1, 0, 0)
	blue = core.NewVec3(0, 0, 1)
)

// newOneSphereWorld builds a 4x4 world with a flat red sphere of radius 1.5
// centred on the view axis, a blue background and one regular sample per
// pixel
func newOneSphereWorld(t *testing.T) *core.World {
	t.Helper()
	s, err := sampler.NewRegular(1, 1, sampler.NewRNG(1))
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}
	world := core.NewWorld(4, 4, blue, s)
	world.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -10), 1.5, red, nil))
	return world
}

func TestRender_OneSphereEndToEnd(t *testing.T) {
	world := newOneSphereWorld(t)

	stats, err := Render(context.Background(), NewOrthographic(), world, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Pixel centres sit at ±0.5 and ±1.5; only the inner four are within
	// radius 1.5 of the axis
	want := []core.Vec3{
		blue, blue, blue, blue,
		blue, red, red, blue,
		blue, red, red, blue,
		blue, blue, blue, blue,
	}
	if diff := cmp.Diff(want, world.Image); diff != "" {
		t.Errorf("Image mismatch (-want +got):\n%s", diff)
	}

	if stats.Pixels != 16 || stats.Samples != 16 || stats.HitSamples != 4 || stats.BackgroundSamples != 12 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.HitRatio() != 0.25 {
		t.Errorf("Expected hit ratio 0.25, got %f", stats.HitRatio())
	}
}

func TestRender_RepeatedRunsMatch(t *testing.T) {
	first := newOneSphereWorld(t)
	second := newOneSphereWorld(t)

	for _, world := range []*core.World{first, second} {
		if _, err := Render(context.Background(), NewOrthographic(), world, nil); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}

	if diff := cmp.Diff(first.Image, second.Image); diff != "" {
		t.Errorf("Repeated renders differ (-first +second):\n%s", diff)
	}
}

func TestRender_FixedSeedRandomSamplerIsReproducible(t *testing.T) {
	render := func() []core.Vec3 {
		s, err := sampler.NewRandom(8, 4, sampler.NewRNG(83))
		if err != nil {
			t.Fatalf("NewRandom: %v", err)
		}
		world := core.NewWorld(6, 6, core.Vec3{}, s)
		world.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -10), 2, red, nil))
		if _, err := Render(context.Background(), NewOrthographic(), world, nil); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return world.Image
	}

	if diff := cmp.Diff(render(), render()); diff != "" {
		t.Errorf("Same seed produced different images:\n%s", diff)
	}
}

func TestRender_AveragesSamples(t *testing.T) {
	// A 2x2 regular grid puts sample origins at x = ±0.25. The tilted plane
	// through the origin is hit at t = x, so only the x = +0.25 half lands
	// beyond the bias epsilon.
	s, err := sampler.NewRegular(4, 1, sampler.NewRNG(1))
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}
	world := core.NewWorld(1, 1, core.Vec3{}, s)
	world.AddShape(geometry.NewPlane(core.Vec3{}, core.NewVec3(1, 0, 1), core.Mono(1), nil))

	stats, err := Render(context.Background(), NewOrthographic(), world, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(world.Image) != 1 || !world.Image[0].Equals(core.Mono(0.5), 1e-12) {
		t.Errorf("Expected a single (0.5,0.5,0.5) pixel, got %v", world.Image)
	}
	if stats.HitSamples != 2 || stats.BackgroundSamples != 2 {
		t.Errorf("Expected 2 hit and 2 background samples, got %+v", stats)
	}
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	s, err := sampler.NewRandom(4, 2, sampler.NewRNG(7))
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	bg := core.NewVec3(0.2, 0.3, 0.4)
	world := core.NewWorld(3, 2, bg, s)

	stats, err := Render(context.Background(), NewOrthographic(), world, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(world.Image) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(world.Image))
	}
	for i, c := range world.Image {
		if !c.Equals(bg, 1e-12) {
			t.Errorf("Pixel %d: expected background %v, got %v", i, bg, c)
		}
	}
	if stats.HitSamples != 0 || stats.BackgroundSamples != 24 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestPinhole_RenderSceneShadesMatte(t *testing.T) {
	s, err := sampler.NewRegular(1, 1, sampler.NewRNG(1))
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}
	world := core.NewWorld(1, 1, core.Vec3{}, s)
	world.Ambient = lights.NewAmbient(core.Mono(1), 0.05)
	light := lights.NewDirectional(core.NewVec3(0, 0, 1))
	light.ScaleRadiance(4)
	world.AddLight(light)
	world.AddShape(geometry.NewSphere(core.Vec3{}, 100, red, material.NewMatte(0.5, 0.05, red)))

	cam := NewPinhole(core.NewVec3(0, 0, 500), core.Vec3{})
	if _, err := cam.RenderScene(context.Background(), world); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}

	want := []core.Vec3{core.NewVec3(0.0025+2/math.Pi, 0, 0)}
	if diff := cmp.Diff(want, world.Image, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Image mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	world := newOneSphereWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := Render(ctx, NewOrthographic(), world, nil)
	if err != context.Canceled {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(world.Image) != 0 || stats.Pixels != 0 {
		t.Errorf("Expected no pixels after cancellation, got %d (stats %+v)", len(world.Image), stats)
	}
}

type zeroSampler struct{}

func (zeroSampler) SampleUnitSquare() core.Vec2 { return core.Vec2{} }
func (zeroSampler) NumSamples() int             { return 0 }

func TestRender_InvalidInputs(t *testing.T) {
	world := newOneSphereWorld(t)
	noSampler := core.NewWorld(1, 1, core.Vec3{}, nil)
	badSampler := core.NewWorld(1, 1, core.Vec3{}, zeroSampler{})

	tests := []struct {
		name  string
		cam   Camera
		world *core.World
	}{
		{"nil camera", nil, world},
		{"nil world", NewOrthographic(), nil},
		{"no sampler", NewOrthographic(), noSampler},
		{"zero samples", NewOrthographic(), badSampler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(context.Background(), tt.cam, tt.world, nil); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
