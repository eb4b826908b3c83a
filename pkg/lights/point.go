package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Point is light from a single location. Radiance does not fall off with
// distance.
type Point struct {
	radiance
	Location core.Vec3
}

// NewPoint creates a white, unit radiance point light at location
func NewPoint(location core.Vec3) *Point {
	return &Point{radiance: defaultRadiance(), Location: location}
}

// Type returns LightTypePoint
func (l *Point) Type() LightType { return LightTypePoint }

// Direction implements core.Light
func (l *Point) Direction(sr *core.ShadeRec) core.Vec3 {
	return l.Location.Subtract(sr.HitPoint()).Normalize()
}
