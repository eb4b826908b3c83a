package core

// Shape is anything a ray can be intersected against.
//
// Hit tests ray against the shape and, if the intersection is valid and
// closer than sr.T, overwrites sr with this shape's hit data. It returns
// true only when sr was updated, so calling Hit on every shape of a scene
// with the same record leaves the nearest intersection in it.
type Shape interface {
	Hit(ray Ray, sr *ShadeRec) bool
}

// Material computes the radiance leaving a surface toward the viewer
type Material interface {
	Shade(sr *ShadeRec) Vec3
}

// Light contributes a direction and a radiance to the shading equation
type Light interface {
	// Direction returns the unit direction from the hit point toward the light
	Direction(sr *ShadeRec) Vec3
	// L returns the incident radiance at the hit point
	L(sr *ShadeRec) Vec3
	ScaleRadiance(b float64)
	SetColour(c Vec3)
}

// Sampler doles out sample points on the unit square.
// Implementations are generally stateful and not safe for concurrent use.
type Sampler interface {
	SampleUnitSquare() Vec2
	NumSamples() int
}
