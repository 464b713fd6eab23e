package cli

import (
	"log/slog"
	"os"

	"resume-builder/internal/aggregator"
	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	logLevel   string
	logFormat  string
	outputDir  string
	chromePath string
	idStrategy string
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Edit a resume and export it as a paginated PDF",
	Long: `resume-builder keeps one resume document in memory, edits it section by
section through an HTTP API, previews it as HTML and exports it as a
multi-page PDF captured with headless Chrome.

Settings come from the environment (or a .env file); flags override them.`,
	SilenceUsage: true,
}

// newRasterizer builds the capture collaborator. Tests replace it.
var newRasterizer = func(cfg *config.Config, log *slog.Logger) usecase.Rasterizer {
	return infra.NewChromedpRasterizer(infra.ChromedpConfig{
		ExecPath:      cfg.ChromePath,
		ViewportWidth: cfg.ViewportWidth,
		Timeout:       cfg.RenderTimeout,
	}, log)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or text (default from LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for exported files (default from OUTPUT_DIR)")
	rootCmd.PersistentFlags().StringVar(&chromePath, "chrome-path", "", "Chrome binary (default from CHROME_PATH)")
	rootCmd.PersistentFlags().StringVar(&idStrategy, "ids", "", "entry id strategy: uuid, snowflake or sequence (default from ID_STRATEGY)")
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig() *config.Config {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if chromePath != "" {
		cfg.ChromePath = chromePath
	}
	if idStrategy != "" {
		cfg.IDStrategy = idStrategy
	}
	return cfg
}

func newLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	return log
}

func newSession(cfg *config.Config, log *slog.Logger) (*usecase.Session, error) {
	ids, err := aggregator.NewIDGenerator(cfg.IDStrategy, cfg.SnowflakeNode)
	if err != nil {
		return nil, errors.Wrap(err, "id generator")
	}
	return usecase.NewSession(ids, log), nil
}

func captureOptions(cfg *config.Config) domain.CaptureOptions {
	return domain.CaptureOptions{Scale: cfg.CaptureScale, AllowCrossOrigin: cfg.AllowCrossOrigin}
}

func newExporter(cfg *config.Config, repo usecase.ExportsRepo, log *slog.Logger) *usecase.Exporter {
	return usecase.NewExporter(
		newRasterizer(cfg, log),
		infra.NewFPDFEncoder("Resume"),
		repo,
		usecase.ExporterConfig{OutputDir: cfg.OutputDir, Layout: usecase.A4, Capture: captureOptions(cfg)},
		log,
	)
}
