package scene

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/storage"
)

// Description is the serializable form of a scene. Vectors are written as
// three-element lists; colours are RGB in [0,1].
type Description struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Width       int       `yaml:"width" json:"width"`
	Height      int       `yaml:"height" json:"height"`
	Background  []float64 `yaml:"background,omitempty" json:"background,omitempty"`

	Sampler SamplerDescription `yaml:"sampler" json:"sampler"`
	Camera  CameraDescription  `yaml:"camera" json:"camera"`

	// Materials are referenced by name from shapes; every shape naming the
	// same material shares one instance.
	Materials map[string]MaterialDescription `yaml:"materials,omitempty" json:"materials,omitempty"`

	Ambient *LightDescription  `yaml:"ambient,omitempty" json:"ambient,omitempty"`
	Lights  []LightDescription `yaml:"lights,omitempty" json:"lights,omitempty"`
	Shapes  []ShapeDescription `yaml:"shapes,omitempty" json:"shapes,omitempty"`
}

// SamplerDescription selects a sampling pattern
type SamplerDescription struct {
	Type    string `yaml:"type" json:"type"` // regular or random
	Samples int    `yaml:"samples" json:"samples"`
	Sets    int    `yaml:"sets" json:"sets"`
}

// CameraDescription configures a pinhole or orthographic camera
type CameraDescription struct {
	Type string `yaml:"type" json:"type"` // pinhole or orthographic

	// Pinhole
	Eye      []float64 `yaml:"eye,omitempty" json:"eye,omitempty"`
	LookAt   []float64 `yaml:"lookAt,omitempty" json:"lookAt,omitempty"`
	Up       []float64 `yaml:"up,omitempty" json:"up,omitempty"`
	Distance float64   `yaml:"distance,omitempty" json:"distance,omitzero"` // 0 means 500
	Zoom     float64   `yaml:"zoom,omitempty" json:"zoom,omitzero"`         // 0 means 1

	// Orthographic
	Offset []float64 `yaml:"offset,omitempty" json:"offset,omitempty"`
	Z      float64   `yaml:"z,omitempty" json:"z,omitzero"`
}

// MaterialDescription describes a matte material
type MaterialDescription struct {
	Type   string    `yaml:"type,omitempty" json:"type,omitempty"` // matte (default)
	Kd     float64   `yaml:"kd" json:"kd"`
	Ka     float64   `yaml:"ka" json:"ka"`
	Colour []float64 `yaml:"colour" json:"colour"`
}

// LightDescription describes an ambient, directional or point light.
// Colour defaults to white and Radiance to 1.
type LightDescription struct {
	Type      string    `yaml:"type,omitempty" json:"type,omitempty"`
	Colour    []float64 `yaml:"colour,omitempty" json:"colour,omitempty"`
	Radiance  *float64  `yaml:"radiance,omitempty" json:"radiance,omitempty"`
	Direction []float64 `yaml:"direction,omitempty" json:"direction,omitempty"`
	Location  []float64 `yaml:"location,omitempty" json:"location,omitempty"`
}

// ShapeDescription describes a sphere, plane or triangle. A shape without
// a material is drawn in its flat colour.
type ShapeDescription struct {
	Type     string      `yaml:"type" json:"type"`
	Vertices [][]float64 `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Center   []float64   `yaml:"center,omitempty" json:"center,omitempty"`
	Radius   float64     `yaml:"radius,omitempty" json:"radius,omitzero"`
	Point    []float64   `yaml:"point,omitempty" json:"point,omitempty"`
	Normal   []float64   `yaml:"normal,omitempty" json:"normal,omitempty"`
	Colour   []float64   `yaml:"colour,omitempty" json:"colour,omitempty"`
	Material string      `yaml:"material,omitempty" json:"material,omitempty"`
}

// Format is a scene description encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the description format from a file extension
func FormatFromPath(p string) (Format, error) {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Errorf("scene: cannot tell the format of %q (want .yaml, .yml or .json)", p)
	}
}

// Parse decodes a description. Unknown fields are rejected in both formats.
func Parse(data []byte, format Format) (*Description, error) {
	var d Description
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(err, "scene: parsing yaml")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &d, json.RejectUnknownMembers(true)); err != nil {
			return nil, errors.Wrap(err, "scene: parsing json")
		}
	default:
		return nil, errors.Errorf("scene: unknown description format %q", format)
	}
	return &d, nil
}

// Load reads and parses the description at loc, a local path or blob URL
func Load(ctx context.Context, loc string) (*Description, error) {
	format, err := FormatFromPath(loc)
	if err != nil {
		return nil, err
	}
	data, err := storage.ReadFile(ctx, loc)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", loc)
	}
	if d.Name == "" {
		d.Name = nameFromPath(loc)
	}
	return d, nil
}

// Marshal encodes d in the given format
func (d *Description) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(d)
		return data, errors.Wrap(err, "scene: encoding yaml")
	case FormatJSON:
		data, err := json.Marshal(d, json.Deterministic(true))
		return data, errors.Wrap(err, "scene: encoding json")
	default:
		return nil, errors.Errorf("scene: unknown description format %q", format)
	}
}

// nameFromPath returns the file name of loc without extension or query
func nameFromPath(loc string) string {
	if i := strings.IndexByte(loc, '?'); i >= 0 {
		loc = loc[:i]
	}
	base := path.Base(strings.ReplaceAll(loc, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
