package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"

	"github.com/pkg/errors"
)

// ErrExportFailed wraps every error that aborts an export.
var ErrExportFailed = errors.New("export failed")

// Rasterizer captures an HTML surface as one tall image.
type Rasterizer interface {
	Capture(ctx context.Context, html string, opts domain.CaptureOptions) (domain.RasterImage, error)
}

// Encoder opens page documents.
type Encoder interface {
	NewDocument(orientation, unit, pageSize string) PageDocument
}

// PageDocument places images on pages and writes the result. The first page
// exists as soon as the document is created.
type PageDocument interface {
	AddPage()
	AddImage(img []byte, format string, x, y, w, h float64) error
	Save(filename string) error
}

type ExportsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

type ExporterConfig struct {
	OutputDir string
	Layout    Layout
	Capture   domain.CaptureOptions
}

// Exporter runs project, render, capture, paginate and encode for one
// document snapshot.
type Exporter struct {
	rasterizer Rasterizer
	encoder    Encoder
	repo       ExportsRepo
	cfg        ExporterConfig
	log        *slog.Logger
}

func NewExporter(r Rasterizer, e Encoder, repo ExportsRepo, cfg ExporterConfig, log *slog.Logger) *Exporter {
	if cfg.Layout == (Layout{}) {
		cfg.Layout = A4
	}
	if cfg.Capture.Scale == 0 {
		cfg.Capture.Scale = 2
	}
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{rasterizer: r, encoder: e, repo: repo, cfg: cfg, log: log}
}

// Filename is the download name for doc: {firstName}_{lastName}_Resume.pdf.
// Blank names leave empty segments.
func Filename(p model.PersonalInfo) string {
	return p.FirstName + "_" + p.LastName + "_Resume.pdf"
}

// Export writes doc as a paginated PDF and records the outcome on job. Any
// failure marks the job failed, leaves no output file and returns an error
// wrapping ErrExportFailed.
func (x *Exporter) Export(ctx context.Context, doc model.ResumeDocument, job *domain.ExportJob) error {
	log := x.log.With("export_id", job.ID.String())
	log.Info("export started", "filename", job.Filename)

	path, pages, err := x.export(ctx, doc, job.Filename)
	if err != nil {
		// both sentinels stay in the chain
		err = fmt.Errorf("%w: %w", ErrExportFailed, err)
		job.Fail(err)
		log.Error("export failed", "error", err.Error())
	} else {
		job.Complete(path, pages)
		log.Info("export completed", "path", path, "pages", pages)
	}

	if x.repo != nil {
		if serr := x.repo.Save(ctx, job); serr != nil {
			log.Warn("failed to save export job", "error", serr.Error())
		}
	}
	return err
}

func (x *Exporter) export(ctx context.Context, doc model.ResumeDocument, filename string) (string, int, error) {
	html, err := preview.Render(preview.Project(doc))
	if err != nil {
		return "", 0, errors.Wrap(err, "render surface")
	}

	img, err := x.rasterizer.Capture(ctx, html, x.cfg.Capture)
	if err != nil {
		return "", 0, errors.Wrap(err, "capture surface")
	}
	if len(img.Data) == 0 {
		return "", 0, errors.Wrap(ErrEmptySurface, "capture returned no image data")
	}

	placements, err := Paginate(img.Width, img.Height, x.cfg.Layout)
	if err != nil {
		return "", 0, err
	}

	format := img.Format
	if format == "" {
		format = "PNG"
	}
	pdf := x.encoder.NewDocument("P", "mm", "A4")
	for i, p := range placements {
		if i > 0 {
			pdf.AddPage()
		}
		if err := pdf.AddImage(img.Data, format, p.X, p.Y, p.Width, p.Height); err != nil {
			return "", 0, errors.Wrapf(err, "place image on page %d", i+1)
		}
	}

	if err := os.MkdirAll(x.cfg.OutputDir, 0o755); err != nil {
		return "", 0, errors.Wrap(err, "create output dir")
	}
	path := filepath.Join(x.cfg.OutputDir, diskName(filename))
	if err := pdf.Save(path); err != nil {
		return "", 0, errors.Wrap(err, "save document")
	}
	return path, len(placements), nil
}

// diskName keeps a user-supplied filename inside the output directory.
func diskName(name string) string {
	return strings.NewReplacer("/", "-", `\`, "-").Replace(name)
}
