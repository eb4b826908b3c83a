// Package scene assembles worlds and cameras from built-in definitions or
// YAML/JSON scene descriptions.
package scene

import (
	"context"
	"log/slog"

	"pgregory.net/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene is a populated world together with the camera that views it
type Scene struct {
	Name   string
	World  *core.World
	Camera renderer.Camera
}

// Render clears any previous image and renders the world through the
// scene camera
func (s *Scene) Render(ctx context.Context, logger *slog.Logger) (renderer.RenderStats, error) {
	s.World.ResetImage()
	return renderer.Render(ctx, s.Camera, s.World, logger)
}

// Options adjust a scene while it is built
type Options struct {
	// RNG drives the sampler. Nil seeds one from entropy.
	RNG *rand.Rand
	// Samples and Sets override the described sampler when positive
	Samples int
	Sets    int
}

// Resolve returns the built-in scene called name, or else loads name as a
// description file or blob URL, and builds it
func Resolve(ctx context.Context, name string, opts Options) (*Scene, error) {
	if d, ok := Builtin(name); ok {
		return d.Build(opts)
	}
	d, err := Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return d.Build(opts)
}
