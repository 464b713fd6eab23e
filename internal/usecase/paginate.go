package usecase

import (
	"math"

	"github.com/pkg/errors"
)

// ErrEmptySurface is returned for a raster with no pixels.
var ErrEmptySurface = errors.New("surface has zero size")

// Layout is the logical page geometry in millimetres.
type Layout struct {
	PageWidth  float64
	PageHeight float64
}

// A4 is 210mm wide. Pages advance 295mm at a time, leaving a 2mm bottom
// margin on a 297mm sheet.
var A4 = Layout{PageWidth: 210, PageHeight: 295}

// Placement puts the whole raster on one page. Y is zero or negative, so
// each page window shows the next unconsumed slice of the image.
type Placement struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// slack absorbs float error so an image that is an exact multiple of the
// page height does not produce a trailing blank page.
const slack = 1e-6

// Paginate slices a rasterW x rasterH surface into pages of layout. The
// image is scaled to the page width keeping its aspect ratio and placed on
// ceil(scaledHeight / PageHeight) pages.
func Paginate(rasterW, rasterH int, layout Layout) ([]Placement, error) {
	if rasterW <= 0 || rasterH <= 0 {
		return nil, errors.Wrapf(ErrEmptySurface, "%dx%d", rasterW, rasterH)
	}
	if layout.PageWidth <= 0 || layout.PageHeight <= 0 {
		return nil, errors.Errorf("invalid page layout %vx%v", layout.PageWidth, layout.PageHeight)
	}

	imgH := float64(rasterH) * layout.PageWidth / float64(rasterW)
	pages := int(math.Ceil(imgH/layout.PageHeight - slack))
	if pages < 1 {
		pages = 1
	}

	out := make([]Placement, 0, pages)
	for i := 0; i < pages; i++ {
		out = append(out, Placement{
			Page:   i,
			X:      0,
			Y:      -float64(i) * layout.PageHeight,
			Width:  layout.PageWidth,
			Height: imgH,
		})
	}
	return out, nil
}
