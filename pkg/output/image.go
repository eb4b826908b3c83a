// Package output turns a rendered radiance buffer into an 8-bit image and
// writes it out.
package output

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToImage converts a row-major radiance buffer to an RGBA image. Buffer row
// 0 becomes image row 0 unless flip is set, in which case rows are written
// bottom-up. Each channel is clamped to [0,1] and scaled by 255 with
// truncation.
func ToImage(width, height int, buffer []core.Vec3, flip bool) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("output: negative image size %dx%d", width, height)
	}
	if len(buffer) != width*height {
		return nil, errors.Errorf("output: buffer holds %d pixels, want %dx%d = %d",
			len(buffer), width, height, width*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for r := 0; r < height; r++ {
		y := r
		if flip {
			y = height - 1 - r
		}
		for c := 0; c < width; c++ {
			img.SetRGBA(c, y, toRGBA(buffer[r*width+c]))
		}
	}
	return img, nil
}

func toRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: channel(c.X),
		G: channel(c.Y),
		B: channel(c.Z),
		A: 255,
	}
}

// channel maps [0,1] to [0,255] by truncation. NaN maps to 0.
func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(max(0, min(1, v)) * 255)
}

// FromImage converts an image back to a row-major radiance buffer with
// channels in [0,1]
func FromImage(img image.Image) (width, height int, buffer []core.Vec3) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	buffer = make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			buffer[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return width, height, buffer
}
