package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/aggregator"
	"resume-builder/internal/preview"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	previewData string
	previewOut  string
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a resume JSON file as a standalone HTML page",
	Long: `Render the preview surface without a browser. The page has its stylesheet
inlined and opens on its own.

Example:
  resume-builder preview --data resume.json --out resume.html`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewData, "data", "", "resume JSON file")
	previewCmd.Flags().StringVar(&previewOut, "out", "", "output HTML file (default stdout)")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	// stdout may carry the page itself
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	doc, err := readDocument(previewData)
	if err != nil {
		return err
	}
	session := usecase.NewSession(&aggregator.SequenceGenerator{}, log)
	if err := session.Load(doc); err != nil {
		return err
	}
	html, err := preview.Render(session.Preview())
	if err != nil {
		return err
	}
	if previewOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if dir := filepath.Dir(previewOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output dir")
		}
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", previewOut)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", previewOut)
	return nil
}
