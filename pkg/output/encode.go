package output

import (
	"context"
	"image"
	"image/png"
	"io"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"golang.org/x/image/bmp"

	"github.com/df07/go-whitted-raytracer/pkg/storage"
)

// Format is an output image encoding
type Format string

const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatBMP, FormatPNG:
		return f, nil
	default:
		return "", errors.Errorf("output: unknown image format %q (want bmp or png)", name)
	}
}

// FormatFromPath infers the format from a file name or URL extension
func FormatFromPath(p string) (Format, error) {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ext == "" {
		return "", errors.Errorf("output: no extension on %q", p)
	}
	return ParseFormat(ext)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/bmp"
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	default:
		return errors.Errorf("output: unknown image format %q", format)
	}
	return errors.Wrapf(err, "output: encoding %s", format)
}

// Decode reads a BMP or PNG image
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "output: decoding image")
	}
	return img, Format(name), nil
}

// Write encodes img and stores it at dest, a local path or blob URL. An
// empty format is inferred from dest.
func Write(ctx context.Context, dest string, img image.Image, format Format) error {
	format, err := resolveFormat(dest, format)
	if err != nil {
		return err
	}
	w, err := storage.Create(ctx, dest, format.ContentType())
	if err != nil {
		return err
	}
	return encodeAndClose(w, img, format)
}

// WriteTo is Write against a bucket the caller already holds
func WriteTo(ctx context.Context, bucket *blob.Bucket, key string, img image.Image, format Format) error {
	format, err := resolveFormat(key, format)
	if err != nil {
		return err
	}
	w, err := storage.CreateIn(ctx, bucket, key, format.ContentType())
	if err != nil {
		return err
	}
	return encodeAndClose(w, img, format)
}

func resolveFormat(name string, format Format) (Format, error) {
	if format == "" {
		return FormatFromPath(name)
	}
	return ParseFormat(string(format))
}

func encodeAndClose(w io.WriteCloser, img image.Image, format Format) error {
	if err := Encode(w, img, format); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
