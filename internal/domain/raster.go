package domain

// RasterImage is a captured surface: encoded image bytes and their pixel size.
type RasterImage struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// CaptureOptions are passed to the rasterizer with every capture.
type CaptureOptions struct {
	Scale            float64
	AllowCrossOrigin bool
}
