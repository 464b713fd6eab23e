package cli

import (
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportData string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume JSON file as a paginated PDF",
	Long: `Load a resume document, render it, capture it with headless Chrome and
write {firstName}_{lastName}_Resume.pdf into the output directory.

Example:
  resume-builder export --data resume.json --output-dir out`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportData, "data", "", "resume JSON file")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)

	doc, err := readDocument(exportData)
	if err != nil {
		return err
	}
	session, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	if err := session.Load(doc); err != nil {
		return err
	}

	snapshot := session.Snapshot()
	job := domain.NewExportJob(usecase.Filename(snapshot.PersonalInfo))
	if err := newExporter(cfg, nil, log).Export(cmd.Context(), snapshot, job); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", job.Path, job.Pages)
	return nil
}
