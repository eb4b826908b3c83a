package renderer

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Render casts world.Sampler.NumSamples() rays per pixel through cam and
// appends the averaged radiance of each pixel to world.Image, row 0 first.
//
// The context is checked before each row. On cancellation Render returns
// ctx.Err() and the stats of the rows already finished; world.Image keeps
// those rows. A nil logger uses slog.Default().
func Render(ctx context.Context, cam Camera, world *core.World, logger *slog.Logger) (RenderStats, error) {
	var stats RenderStats
	if cam == nil {
		return stats, errors.New("renderer: nil camera")
	}
	if world == nil {
		return stats, errors.New("renderer: nil world")
	}
	if world.Sampler == nil {
		return stats, errors.New("renderer: world has no sampler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	n := world.Sampler.NumSamples()
	if n < 1 {
		return stats, errors.Errorf("renderer: sampler reports %d samples per pixel", n)
	}
	stats.SamplesPerPixel = n

	logger.Debug("render started",
		"width", world.Width, "height", world.Height, "spp", n,
		"shapes", len(world.Shapes), "lights", len(world.Lights))

	halfW := 0.5 * float64(world.Width)
	halfH := 0.5 * float64(world.Height)

	for r := 0; r < world.Height; r++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			logger.Warn("render cancelled", "row", r, "stats", stats)
			return stats, err
		}

		for c := 0; c < world.Width; c++ {
			var pixel core.Vec3
			for j := 0; j < n; j++ {
				sp := world.Sampler.SampleUnitSquare()
				pp := core.NewVec2(float64(c)-halfW+sp.X, float64(r)-halfH+sp.Y)

				L, hit := traceRay(world, cam.Ray(pp))
				pixel = pixel.Add(L)
				if hit {
					stats.HitSamples++
				} else {
					stats.BackgroundSamples++
				}
			}
			stats.Samples += n

			world.Image = append(world.Image, pixel.Divide(float64(n)))
			stats.Pixels++
		}
	}

	stats.Duration = time.Since(start)
	logger.Debug("render finished", "stats", stats)
	return stats, nil
}

// traceRay returns the radiance along ray and whether it hit a shape.
// Shapes without a material return their flat colour.
func traceRay(world *core.World, ray core.Ray) (core.Vec3, bool) {
	sr, hit := world.HitObjects(ray)
	if !hit {
		return world.Background, false
	}
	if sr.Material == nil {
		return sr.Colour, true
	}
	return sr.Material.Shade(sr), true
}

// RenderScene renders world through the pinhole camera
func (p *Pinhole) RenderScene(ctx context.Context, world *core.World) (RenderStats, error) {
	return Render(ctx, p, world, nil)
}

// RenderScene renders world through the orthographic camera
func (o *Orthographic) RenderScene(ctx context.Context, world *core.World) (RenderStats, error) {
	return Render(ctx, o, world, nil)
}
