package infrastructure

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"resume-builder/internal/usecase"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// FPDFEncoder writes page documents with fpdf.
type FPDFEncoder struct {
	Title string
}

func NewFPDFEncoder(title string) *FPDFEncoder {
	return &FPDFEncoder{Title: title}
}

// NewDocument opens a document with one empty page, no margins and no
// automatic page breaks: the caller decides where every page starts.
func (e *FPDFEncoder) NewDocument(orientation, unit, pageSize string) usecase.PageDocument {
	pdf := fpdf.New(orientation, unit, pageSize, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("resume-builder", true)
	if e.Title != "" {
		pdf.SetTitle(e.Title, true)
	}
	pdf.AddPage()
	return &fpdfDocument{pdf: pdf, images: map[string]string{}}
}

type fpdfDocument struct {
	pdf *fpdf.Fpdf
	// images maps content digests to registered image names, so a raster
	// placed on many pages is embedded once.
	images map[string]string
}

func (d *fpdfDocument) AddPage() {
	d.pdf.AddPage()
}

func (d *fpdfDocument) AddImage(img []byte, format string, x, y, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: format}
	sum := sha256.Sum256(img)
	key := hex.EncodeToString(sum[:])
	name, ok := d.images[key]
	if !ok {
		name = "raster-" + key[:16]
		d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		if err := d.pdf.Error(); err != nil {
			return errors.Wrap(err, "register image")
		}
		d.images[key] = name
	}
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return errors.Wrap(d.pdf.Error(), "place image")
}

// Save writes the document to filename. The file appears only once it is
// complete.
func (d *fpdfDocument) Save(filename string) error {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return errors.Wrap(err, "encode pdf")
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".resume-*.pdf")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write pdf")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close pdf")
	}
	return errors.Wrap(os.Rename(tmp.Name(), filename), "move pdf into place")
}
