package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Ambient is an omnidirectional constant term
type Ambient struct {
	radiance
}

// NewAmbient creates an ambient light with colour c and radiance scale ls
func NewAmbient(c core.Vec3, ls float64) *Ambient {
	return &Ambient{radiance: radiance{colour: c, ls: ls}}
}

// NewDefaultAmbient creates a white ambient light of unit radiance
func NewDefaultAmbient() *Ambient {
	return &Ambient{radiance: defaultRadiance()}
}

// Type returns LightTypeAmbient
func (a *Ambient) Type() LightType { return LightTypeAmbient }

// Direction implements core.Light. Ambient light has no direction.
func (a *Ambient) Direction(sr *core.ShadeRec) core.Vec3 {
	return core.Vec3{}
}
