package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Matte is a diffuse material with separate ambient and diffuse lobes
// sharing one surface colour.
type Matte struct {
	ambientBRDF *Lambertian
	diffuseBRDF *Lambertian
}

// NewMatte creates a matte material with diffuse coefficient kd, ambient
// coefficient ka and surface colour cd
func NewMatte(kd, ka float64, cd core.Vec3) *Matte {
	return &Matte{
		ambientBRDF: NewLambertian(cd, ka),
		diffuseBRDF: NewLambertian(cd, kd),
	}
}

// SetKa sets the ambient reflection coefficient
func (m *Matte) SetKa(ka float64) {
	m.ambientBRDF.Kd = ka
}

// SetKd sets the diffuse reflection coefficient
func (m *Matte) SetKd(kd float64) {
	m.diffuseBRDF.Kd = kd
}

// SetCd sets the surface colour of both lobes
func (m *Matte) SetCd(cd core.Vec3) {
	m.ambientBRDF.Cd = cd
	m.diffuseBRDF.Cd = cd
}

// Shade implements core.Material. Only direct light is gathered and no
// visibility test is made toward the lights.
func (m *Matte) Shade(sr *core.ShadeRec) core.Vec3 {
	wo := sr.Ray.Direction.Negate()

	var L core.Vec3
	if sr.World != nil && sr.World.Ambient != nil {
		L = m.ambientBRDF.Rho(sr, wo).MultiplyVec(sr.World.Ambient.L(sr))
	}
	if sr.World == nil {
		return L
	}

	for _, light := range sr.World.Lights {
		wi := light.Direction(sr)
		nDotWi := sr.Normal.Dot(wi)

		// Lights behind the surface contribute nothing
		if nDotWi > 0 {
			L = L.Add(m.diffuseBRDF.F(sr, wo, wi).MultiplyVec(light.L(sr)).Multiply(nDotWi))
		}
	}

	return L
}
