package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera turns a point on the view plane into a primary ray
type Camera interface {
	Ray(p core.Vec2) core.Ray
}

// basisTolerance is how close eye and lookAt must be in x and z for the
// view direction to count as vertical
const basisTolerance = 1e-6

// Pinhole is a perspective camera with its eye at a single point and the
// view plane at Distance along -W.
type Pinhole struct {
	eye    core.Vec3
	lookAt core.Vec3
	up     core.Vec3

	u, v, w core.Vec3

	distance float64
	zoom     float64
}

// NewPinhole creates a pinhole camera at eye looking toward lookAt, with
// up (0,1,0), a view-plane distance of 500 and a zoom of 1
func NewPinhole(eye, lookAt core.Vec3) *Pinhole {
	p := &Pinhole{
		eye:      eye,
		lookAt:   lookAt,
		up:       core.NewVec3(0, 1, 0),
		distance: 500,
		zoom:     1,
	}
	p.ComputeUVW()
	return p
}

// SetEye moves the camera and recomputes the basis
func (p *Pinhole) SetEye(eye core.Vec3) {
	p.eye = eye
	p.ComputeUVW()
}

// SetLookAt changes the target point and recomputes the basis
func (p *Pinhole) SetLookAt(lookAt core.Vec3) {
	p.lookAt = lookAt
	p.ComputeUVW()
}

// SetUp changes the reference up vector and recomputes the basis
func (p *Pinhole) SetUp(up core.Vec3) {
	p.up = up
	p.ComputeUVW()
}

// SetDistance sets the view-plane distance
func (p *Pinhole) SetDistance(d float64) {
	p.distance = d
}

// SetZoom sets the zoom factor. Pixel points are divided by it, so values
// above 1 narrow the field of view.
func (p *Pinhole) SetZoom(zoom float64) {
	p.zoom = zoom
}

// Eye returns the camera position
func (p *Pinhole) Eye() core.Vec3 { return p.eye }

// Basis returns the camera's orthonormal basis
func (p *Pinhole) Basis() (u, v, w core.Vec3) { return p.u, p.v, p.w }

// ComputeUVW derives the orthonormal basis from eye, lookAt and up.
// Looking straight down or straight up, cross(up, W) vanishes, so a fixed
// basis is used instead.
func (p *Pinhole) ComputeUVW() {
	vertical := math.Abs(p.eye.X-p.lookAt.X) < basisTolerance &&
		math.Abs(p.eye.Z-p.lookAt.Z) < basisTolerance

	switch {
	case vertical && p.eye.Y > p.lookAt.Y:
		p.u = core.NewVec3(0, 0, 1)
		p.v = core.NewVec3(1, 0, 0)
		p.w = core.NewVec3(0, 1, 0)
	case vertical && p.eye.Y < p.lookAt.Y:
		p.u = core.NewVec3(1, 0, 0)
		p.v = core.NewVec3(0, 0, 1)
		p.w = core.NewVec3(0, -1, 0)
	default:
		p.w = p.eye.Subtract(p.lookAt).Normalize()
		p.u = p.up.Cross(p.w).Normalize()
		p.v = p.w.Cross(p.u)
	}
}

// RayDirection returns the unit direction through view-plane point pp
func (p *Pinhole) RayDirection(pp core.Vec2) core.Vec3 {
	return p.u.Multiply(pp.X).
		Add(p.v.Multiply(pp.Y)).
		Subtract(p.w.Multiply(p.distance)).
		Normalize()
}

// Ray implements Camera
func (p *Pinhole) Ray(pp core.Vec2) core.Ray {
	pp = core.NewVec2(pp.X/p.zoom, pp.Y/p.zoom)
	return core.NewRay(p.eye, p.RayDirection(pp))
}

// Orthographic casts parallel rays along -z from the plane z = Z.
// Offset is added to every view-plane point, so an offset of half the image
// size puts the image origin at the world origin.
type Orthographic struct {
	Offset core.Vec2
	Z      float64
}

// NewOrthographic creates an orthographic camera on the z = 0 plane
func NewOrthographic() *Orthographic {
	return &Orthographic{}
}

// Ray implements Camera
func (o *Orthographic) Ray(pp core.Vec2) core.Ray {
	origin := core.NewVec3(pp.X+o.Offset.X, pp.Y+o.Offset.Y, o.Z)
	return core.NewRay(origin, core.NewVec3(0, 0, -1))
}
