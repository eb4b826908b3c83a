package core

import "math"

// ShadeRec is the hit record threaded through the intersection tests of a
// single sample. It is created fresh for each sample and discarded after
// shading.
type ShadeRec struct {
	T        float64  // Closest hit distance so far
	Colour   Vec3     // Flat colour of the closest shape
	Normal   Vec3     // Surface normal at the closest hit
	Ray      Ray      // Ray that produced the closest hit
	Material Material // Material of the closest shape, may be nil
	World    *World   // Owning world, used by shading to reach the lights
}

// NewShadeRec returns an empty record for world with T set to +Inf
func NewShadeRec(world *World) *ShadeRec {
	return &ShadeRec{
		T:     math.Inf(1),
		World: world,
	}
}

// HitPoint returns the world-space point of the recorded hit
func (sr *ShadeRec) HitPoint() Vec3 {
	return sr.Ray.At(sr.T)
}

// World aggregates everything a camera needs to render a scene, plus the
// output image buffer.
type World struct {
	Width, Height int
	Background    Vec3
	Sampler       Sampler
	Shapes        []Shape
	Ambient       Light // Optional; nil contributes no ambient term
	Lights        []Light

	// Image holds one colour per pixel, appended in row-major order
	// (row 0 left to right, then row 1, ...).
	Image []Vec3
}

// NewWorld creates an empty world of the given size
func NewWorld(width, height int, background Vec3, sampler Sampler) *World {
	return &World{
		Width:      width,
		Height:     height,
		Background: background,
		Sampler:    sampler,
		Image:      make([]Vec3, 0, max(0, width*height)),
	}
}

// AddShape appends shapes to the scene
func (w *World) AddShape(shapes ...Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the light list
func (w *World) AddLight(lights ...Light) {
	w.Lights = append(w.Lights, lights...)
}

// HitObjects tests ray against every shape and returns the resulting record.
// The boolean is true if any shape was hit.
func (w *World) HitObjects(ray Ray) (*ShadeRec, bool) {
	sr := NewShadeRec(w)
	hit := false
	for _, shape := range w.Shapes {
		if shape.Hit(ray, sr) {
			hit = true
		}
	}
	return sr, hit
}

// ResetImage discards any previously rendered pixels
func (w *World) ResetImage() {
	w.Image = make([]Vec3, 0, max(0, w.Width*w.Height))
}
