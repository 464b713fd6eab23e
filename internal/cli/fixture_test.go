package cli

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

func pngFixture(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: uint8(y), B: uint8(x), A: 255})
		}
	}
	return png.Encode(w, img)
}
