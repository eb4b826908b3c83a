package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Lambertian is a perfectly diffuse lobe: a diffuse colour Cd scaled by a
// reflection coefficient Kd in [0,1].
type Lambertian struct {
	Kd float64   // Diffuse reflection coefficient
	Cd core.Vec3 // Diffuse colour
}

// NewLambertian creates a new lambertian lobe
func NewLambertian(cd core.Vec3, kd float64) *Lambertian {
	return &Lambertian{Kd: kd, Cd: cd}
}

// F implements BRDF. Lambertian reflectance is constant: Cd·Kd/π.
func (l *Lambertian) F(sr *core.ShadeRec, wo, wi core.Vec3) core.Vec3 {
	return l.Cd.Multiply(l.Kd / math.Pi)
}

// Rho implements BRDF
func (l *Lambertian) Rho(sr *core.ShadeRec, wo core.Vec3) core.Vec3 {
	return l.Cd.Multiply(l.Kd)
}
