package renderer

import (
	"log/slog"
	"time"
)

// RenderStats contains statistics about a finished or cancelled render
type RenderStats struct {
	Pixels            int           // Pixels appended to the image
	Samples           int           // Total samples taken
	HitSamples        int           // Samples whose ray hit a shape
	BackgroundSamples int           // Samples that fell through to the background
	SamplesPerPixel   int           // Sampler.NumSamples() at render time
	Duration          time.Duration // Wall time of the render
}

// HitRatio returns the fraction of samples that hit a shape
func (s RenderStats) HitRatio() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.HitSamples) / float64(s.Samples)
}

// LogValue implements slog.LogValuer
func (s RenderStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pixels", s.Pixels),
		slog.Int("samples", s.Samples),
		slog.Int("spp", s.SamplesPerPixel),
		slog.Float64("hitRatio", s.HitRatio()),
		slog.Duration("duration", s.Duration),
	)
}
