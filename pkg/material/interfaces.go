// Package material implements the local reflectance models used to shade
// hit points.
package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// BRDF is a reflectance lobe evaluated at a hit point
type BRDF interface {
	// F returns the reflectance for light arriving along wi and leaving along wo
	F(sr *core.ShadeRec, wo, wi core.Vec3) core.Vec3
	// Rho returns the bihemispherical reflectance (albedo) toward wo
	Rho(sr *core.ShadeRec, wo core.Vec3) core.Vec3
}
