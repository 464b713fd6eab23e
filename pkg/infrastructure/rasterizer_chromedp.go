package infrastructure

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/domain"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

type ChromedpConfig struct {
	// ExecPath overrides the Chrome binary, empty means search PATH.
	ExecPath      string
	ViewportWidth int
	Timeout       time.Duration
}

// ChromedpRasterizer captures an HTML surface as one full-page PNG with
// headless Chrome.
type ChromedpRasterizer struct {
	cfg ChromedpConfig
	log *slog.Logger
}

func NewChromedpRasterizer(cfg ChromedpConfig, log *slog.Logger) *ChromedpRasterizer {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = 896
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &ChromedpRasterizer{cfg: cfg, log: log}
}

func (r *ChromedpRasterizer) Capture(ctx context.Context, html string, opts domain.CaptureOptions) (domain.RasterImage, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.AllowCrossOrigin {
		allocOpts = append(allocOpts, chromedp.Flag("disable-web-security", true))
	}
	if r.cfg.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.cfg.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.cfg.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return domain.RasterImage{}, errors.Wrap(err, "create temp dir")
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return domain.RasterImage{}, errors.Wrap(err, "write surface")
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	var buf []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(int64(r.cfg.ViewportWidth), 1123, chromedp.EmulateScale(scale)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).
				Do(ctx)
		}),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return domain.RasterImage{}, errors.Wrap(err, "chrome capture")
	}

	img, err := decodeRaster(buf)
	if err != nil {
		return domain.RasterImage{}, err
	}
	r.log.Debug("surface captured", "width", img.Width, "height", img.Height, "bytes", len(img.Data))
	return img, nil
}

// decodeRaster reads the pixel size of an encoded image.
func decodeRaster(data []byte) (domain.RasterImage, error) {
	if len(data) == 0 {
		return domain.RasterImage{}, errors.New("empty screenshot")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.RasterImage{}, errors.Wrap(err, "decode screenshot")
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return domain.RasterImage{}, errors.Errorf("screenshot has zero size %dx%d", cfg.Width, cfg.Height)
	}
	return domain.RasterImage{
		Data:   data,
		Format: formatName(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func formatName(f string) string {
	switch f {
	case "png":
		return "PNG"
	case "jpeg":
		return "JPG"
	default:
		return f
	}
}
