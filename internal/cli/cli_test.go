package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeJSON = `{
  "personalInfo": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com"},
  "experience": [
    {"company": "Acme", "position": "Engineer", "startDate": "2020-01", "achievements": ["Shipped v1", "  "]}
  ],
  "languages": ["English"]
}`

type fixedRasterizer struct {
	img domain.RasterImage
	err error
}

func (f fixedRasterizer) Capture(context.Context, string, domain.CaptureOptions) (domain.RasterImage, error) {
	return f.img, f.err
}

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag variables outlive a single Execute
	previewData, previewOut, exportData, outputDir, logLevel = "", "", "", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPreviewCommand(t *testing.T) {
	data := writeData(t, janeJSON)
	out := filepath.Join(t.TempDir(), "site", "resume.html")

	stdout, err := run(t, "preview", "--data", data, "--out", out, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Jane Doe</h1>")
	assert.Contains(t, string(html), "Jan 2020 - Present")
	assert.Contains(t, string(html), "<li>Shipped v1</li>")
	assert.NotContains(t, string(html), "<li>  </li>")
}

func TestPreviewCommandRejectsInvalidData(t *testing.T) {
	data := writeData(t, `{"skills": [{"level": "expert"}]}`)
	_, err := run(t, "preview", "--data", data, "--log-level", "error")
	assert.Error(t, err)

	_, err = run(t, "preview", "--log-level", "error")
	assert.Error(t, err)

	data = writeData(t, `{"education": [{"school": "   ", "degree": " "}]}`)
	_, err = run(t, "preview", "--data", data, "--log-level", "error")
	assert.ErrorIs(t, err, editor.ErrValidationRejected)
}

func TestExportCommand(t *testing.T) {
	orig := newRasterizer
	t.Cleanup(func() { newRasterizer = orig })

	var img bytes.Buffer
	require.NoError(t, pngFixture(&img, 21, 65))
	newRasterizer = func(*config.Config, *slog.Logger) usecase.Rasterizer {
		return fixedRasterizer{img: domain.RasterImage{Data: img.Bytes(), Format: "PNG", Width: 21, Height: 65}}
	}

	dir := t.TempDir()
	data := writeData(t, janeJSON)
	stdout, err := run(t, "export", "--data", data, "--output-dir", dir, "--log-level", "error")
	require.NoError(t, err)

	want := filepath.Join(dir, "Jane_Doe_Resume.pdf")
	assert.Contains(t, stdout, "wrote "+want+" (3 pages)")
	b, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestExportCommandFailureLeavesNoFile(t *testing.T) {
	orig := newRasterizer
	t.Cleanup(func() { newRasterizer = orig })
	newRasterizer = func(*config.Config, *slog.Logger) usecase.Rasterizer {
		return fixedRasterizer{err: errors.New("no chrome")}
	}

	dir := t.TempDir()
	_, err := run(t, "export", "--data", writeData(t, janeJSON), "--output-dir", dir, "--log-level", "error")
	assert.ErrorIs(t, err, usecase.ErrExportFailed)
	assert.NoFileExists(t, filepath.Join(dir, "Jane_Doe_Resume.pdf"))
}
