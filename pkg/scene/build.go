package scene

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

// Build validates the description and constructs its scene
func (d *Description) Build(opts Options) (*Scene, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, errors.Errorf("scene %q: image size must be positive, got %dx%d", d.Name, d.Width, d.Height)
	}

	background, err := vec3Or(d.Background, core.Vec3{}, "background")
	if err != nil {
		return nil, d.wrap(err)
	}

	smp, err := d.buildSampler(opts)
	if err != nil {
		return nil, d.wrap(err)
	}

	cam, err := d.Camera.build()
	if err != nil {
		return nil, d.wrap(err)
	}

	world := core.NewWorld(d.Width, d.Height, background, smp)

	materials := make(map[string]core.Material, len(d.Materials))
	for name, md := range d.Materials {
		m, err := md.build()
		if err != nil {
			return nil, d.wrap(errors.Wrapf(err, "material %q", name))
		}
		materials[name] = m
	}

	if d.Ambient != nil {
		if t := strings.ToLower(d.Ambient.Type); t != "" && t != string(lights.LightTypeAmbient) {
			return nil, d.wrap(errors.Errorf("ambient light has type %q", d.Ambient.Type))
		}
		ambient, err := d.Ambient.build(lights.LightTypeAmbient)
		if err != nil {
			return nil, d.wrap(errors.Wrap(err, "ambient light"))
		}
		world.Ambient = ambient
	}

	for i, ld := range d.Lights {
		kind := lights.LightType(strings.ToLower(ld.Type))
		if kind == lights.LightTypeAmbient {
			return nil, d.wrap(errors.Errorf("light %d: ambient lights belong in the ambient field", i))
		}
		light, err := ld.build(kind)
		if err != nil {
			return nil, d.wrap(errors.Wrapf(err, "light %d", i))
		}
		world.AddLight(light)
	}

	for i, sd := range d.Shapes {
		shape, err := sd.build(materials)
		if err != nil {
			return nil, d.wrap(errors.Wrapf(err, "shape %d", i))
		}
		world.AddShape(shape)
	}

	return &Scene{Name: d.Name, World: world, Camera: cam}, nil
}

func (d *Description) wrap(err error) error {
	return errors.Wrapf(err, "scene %q", d.Name)
}

func (d *Description) buildSampler(opts Options) (*sampler.Sampler, error) {
	pattern, ok := sampler.PatternByName(strings.ToLower(d.Sampler.Type))
	if !ok {
		return nil, errors.Errorf("unknown sampler type %q", d.Sampler.Type)
	}

	samples, sets := d.Sampler.Samples, d.Sampler.Sets
	if opts.Samples > 0 {
		samples = opts.Samples
	}
	if opts.Sets > 0 {
		sets = opts.Sets
	}

	s, err := sampler.New(pattern, samples, sets, opts.RNG)
	return s, errors.Wrap(err, "sampler")
}

func (c *CameraDescription) build() (renderer.Camera, error) {
	switch strings.ToLower(c.Type) {
	case "pinhole":
		eye, err := vec3(c.Eye, "camera eye")
		if err != nil {
			return nil, err
		}
		lookAt, err := vec3(c.LookAt, "camera lookAt")
		if err != nil {
			return nil, err
		}
		up, err := vec3Or(c.Up, core.NewVec3(0, 1, 0), "camera up")
		if err != nil {
			return nil, err
		}
		if c.Zoom < 0 {
			return nil, errors.Errorf("camera zoom must be positive, got %g", c.Zoom)
		}

		cam := renderer.NewPinhole(eye, lookAt)
		cam.SetUp(up)
		if c.Distance != 0 {
			cam.SetDistance(c.Distance)
		}
		if c.Zoom != 0 {
			cam.SetZoom(c.Zoom)
		}
		return cam, nil

	case "orthographic":
		cam := renderer.NewOrthographic()
		if c.Offset != nil {
			if len(c.Offset) != 2 {
				return nil, errors.Errorf("camera offset needs 2 components, got %d", len(c.Offset))
			}
			cam.Offset = core.NewVec2(c.Offset[0], c.Offset[1])
		}
		cam.Z = c.Z
		return cam, nil

	default:
		return nil, errors.Errorf("unknown camera type %q", c.Type)
	}
}

func (m *MaterialDescription) build() (core.Material, error) {
	if t := strings.ToLower(m.Type); t != "" && t != "matte" {
		return nil, errors.Errorf("unknown material type %q", m.Type)
	}
	colour, err := vec3(m.Colour, "colour")
	if err != nil {
		return nil, err
	}
	return material.NewMatte(m.Kd, m.Ka, colour), nil
}

func (l *LightDescription) build(kind lights.LightType) (core.Light, error) {
	var light core.Light
	switch kind {
	case lights.LightTypeAmbient:
		light = lights.NewDefaultAmbient()
	case lights.LightTypeDirectional:
		dir, err := vec3(l.Direction, "direction")
		if err != nil {
			return nil, err
		}
		light = lights.NewDirectional(dir)
	case lights.LightTypePoint:
		loc, err := vec3(l.Location, "location")
		if err != nil {
			return nil, err
		}
		light = lights.NewPoint(loc)
	default:
		return nil, errors.Errorf("unknown light type %q", l.Type)
	}

	colour, err := vec3Or(l.Colour, core.Mono(1), "colour")
	if err != nil {
		return nil, err
	}
	light.SetColour(colour)
	if l.Radiance != nil {
		light.ScaleRadiance(*l.Radiance)
	}
	return light, nil
}

func (s *ShapeDescription) build(materials map[string]core.Material) (core.Shape, error) {
	colour, err := vec3Or(s.Colour, core.Vec3{}, "colour")
	if err != nil {
		return nil, err
	}

	var mat core.Material
	if s.Material != "" {
		m, ok := materials[s.Material]
		if !ok {
			return nil, errors.Errorf("unknown material %q", s.Material)
		}
		mat = m
	}

	switch strings.ToLower(s.Type) {
	case "sphere":
		center, err := vec3(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, s.Radius, colour, mat), nil
	case "plane":
		point, err := vec3(s.Point, "point")
		if err != nil {
			return nil, err
		}
		normal, err := vec3(s.Normal, "normal")
		if err != nil {
			return nil, err
		}
		if normal == (core.Vec3{}) {
			return nil, errors.New("plane normal is zero")
		}
		return geometry.NewPlane(point, normal, colour, mat), nil
	case "triangle":
		if len(s.Vertices) != 3 {
			return nil, errors.Errorf("triangle needs 3 vertices, got %d", len(s.Vertices))
		}
		var v [3]core.Vec3
		for i, vertex := range s.Vertices {
			if v[i], err = vec3(vertex, fmt.Sprintf("vertex %d", i)); err != nil {
				return nil, err
			}
		}
		if v[1].Subtract(v[0]).Cross(v[2].Subtract(v[0])) == (core.Vec3{}) {
			return nil, errors.New("triangle is degenerate")
		}
		return geometry.NewTriangle(v[0], v[1], v[2], colour, mat), nil
	default:
		return nil, errors.Errorf("unknown shape type %q", s.Type)
	}
}

// vec3 converts a required three-element list
func vec3(v []float64, field string) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, errors.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// vec3Or is vec3 for optional fields, returning def when v is absent
func vec3Or(v []float64, def core.Vec3, field string) (core.Vec3, error) {
	if v == nil {
		return def, nil
	}
	return vec3(v, field)
}
