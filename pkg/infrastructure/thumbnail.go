package infrastructure

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Thumbnail scales an encoded raster down to width pixels, keeping the
// aspect ratio, and returns it as PNG. Images already narrower than width
// are re-encoded at their own size.
func Thumbnail(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, errors.Errorf("invalid thumbnail width %d", width)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image (format: %s)", format)
	}

	bounds := img.Bounds()
	newWidth, newHeight := bounds.Dx(), bounds.Dy()
	if newWidth > width {
		newHeight = int(float64(newHeight) * float64(width) / float64(newWidth))
		newWidth = width
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, errors.Wrap(err, "encode thumbnail")
	}
	return buf.Bytes(), nil
}
