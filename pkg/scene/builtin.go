package scene

import (
	"slices"
	"strings"
)

func ptr[T any](v T) *T { return &v }

// Colour constructors return fresh slices so descriptions never alias
func red() []float64   { return []float64{1, 0, 0} }
func green() []float64 { return []float64{0, 1, 0} }
func blue() []float64  { return []float64{0, 0, 1} }
func white() []float64 { return []float64{1, 1, 1} }
func black() []float64 { return []float64{0, 0, 0} }

// sphereScene is a single flat red sphere seen head-on, one sample per
// pixel. The camera offset puts ray origins at pixel centres (c+0.5, r+0.5).
func sphereScene() *Description {
	return &Description{
		Name:        "sphere",
		Description: "Single flat-coloured sphere, orthographic, one sample per pixel",
		Width:       512,
		Height:      512,
		Background:  black(),
		Sampler:     SamplerDescription{Type: "regular", Samples: 1, Sets: 1},
		Camera:      CameraDescription{Type: "orthographic", Offset: []float64{256, 256}},
		Shapes: []ShapeDescription{
			{Type: "sphere", Center: []float64{256, 256, 0}, Radius: 128, Colour: red()},
		},
	}
}

// cameraScene is two flat spheres seen from above and to the side by a
// pinhole camera
func cameraScene() *Description {
	return &Description{
		Name:        "camera",
		Description: "Two flat-coloured spheres through a pinhole camera",
		Width:       600,
		Height:      600,
		Background:  black(),
		Sampler:     SamplerDescription{Type: "random", Samples: 16, Sets: 83},
		Camera: CameraDescription{
			Type:   "pinhole",
			Eye:    []float64{150, 150, 500},
			LookAt: []float64{0, 0, 0},
		},
		Shapes: []ShapeDescription{
			{Type: "sphere", Center: []float64{64, 64, 0}, Radius: 128, Colour: red()},
			{Type: "sphere", Center: []float64{128, 128, 64}, Radius: 64, Colour: blue()},
		},
	}
}

// shadingScene is three matte spheres under a dim ambient term and a
// bright directional light from the viewer's side
func shadingScene() *Description {
	matte := func(colour []float64) MaterialDescription {
		return MaterialDescription{Type: "matte", Kd: 0.5, Ka: 0.05, Colour: colour}
	}
	return &Description{
		Name:        "shading",
		Description: "Three matte spheres with ambient and directional light, orthographic",
		Width:       600,
		Height:      600,
		Background:  black(),
		Sampler:     SamplerDescription{Type: "random", Samples: 4, Sets: 83},
		Camera:      CameraDescription{Type: "orthographic"},
		Materials: map[string]MaterialDescription{
			"red":   matte(red()),
			"blue":  matte(blue()),
			"green": matte(green()),
		},
		Ambient: &LightDescription{Type: "ambient", Colour: white(), Radiance: ptr(0.05)},
		Lights: []LightDescription{
			{Type: "directional", Direction: []float64{0, 0, 1024}, Colour: white(), Radiance: ptr(4.0)},
		},
		Shapes: []ShapeDescription{
			{Type: "sphere", Center: []float64{0, 0, -600}, Radius: 128, Colour: red(), Material: "red"},
			{Type: "sphere", Center: []float64{128, 32, -700}, Radius: 64, Colour: blue(), Material: "blue"},
			{Type: "sphere", Center: []float64{-128, 32, -700}, Radius: 64, Colour: green(), Material: "green"},
		},
	}
}

// pinholeShadingScene views the shading scene in perspective from the origin
func pinholeShadingScene() *Description {
	d := shadingScene()
	d.Name = "pinhole-shading"
	d.Description = "Three matte spheres with ambient and directional light, pinhole camera"
	d.Camera = CameraDescription{
		Type:     "pinhole",
		Eye:      []float64{0, 0, 0},
		LookAt:   []float64{0, 0, -600},
		Distance: 500,
	}
	return d
}

var builtins = map[string]func() *Description{
	"sphere":          sphereScene,
	"camera":          cameraScene,
	"shading":         shadingScene,
	"pinhole-shading": pinholeShadingScene,
}

// Builtin returns a fresh copy of the named built-in scene description
func Builtin(name string) (*Description, bool) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
