package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Directional is light from an infinitely distant source: every hit point
// sees it along the same direction.
type Directional struct {
	radiance
	direction core.Vec3
}

// NewDirectional creates a white, unit radiance light shining from d.
// d need not be normalized.
func NewDirectional(d core.Vec3) *Directional {
	l := &Directional{radiance: defaultRadiance()}
	l.SetDirection(d)
	return l
}

// SetDirection stores d normalized. A zero vector stays zero, so the light
// never passes the n·wi > 0 test.
func (l *Directional) SetDirection(d core.Vec3) {
	l.direction = d.Normalize()
}

// Type returns LightTypeDirectional
func (l *Directional) Type() LightType { return LightTypeDirectional }

// Direction implements core.Light
func (l *Directional) Direction(sr *core.ShadeRec) core.Vec3 {
	return l.direction
}
