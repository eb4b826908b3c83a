// Package lights provides the radiance sources used by the shading model.
package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// LightType names a kind of light in logs and scene descriptions
type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// radiance holds the colour and scale every light carries. Lights start
// white with a scale of 1.
type radiance struct {
	colour core.Vec3
	ls     float64
}

func defaultRadiance() radiance {
	return radiance{colour: core.Mono(1), ls: 1}
}

// ScaleRadiance sets the radiance scale factor
func (r *radiance) ScaleRadiance(b float64) {
	r.ls = b
}

// SetColour sets the light colour
func (r *radiance) SetColour(c core.Vec3) {
	r.colour = c
}

// L returns ls·colour, independent of the hit point
func (r *radiance) L(sr *core.ShadeRec) core.Vec3 {
	return r.colour.Multiply(r.ls)
}
