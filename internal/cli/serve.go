package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var port string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the editing API for one resume session",
	Long: `Start the HTTP API. The resume lives in memory for as long as the server
runs. Exports run in the background and, when EXPORTS_DATABASE_URL is set,
their history is kept in Postgres.

Example:
  resume-builder serve --port 3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (default from PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if port != "" {
		cfg.Port = port
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	pool, err := infra.NewExportsPool(ctx, cfg.ExportsDatabaseURL)
	if err != nil {
		log.Warn("exports database not available", "error", err)
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, log); err != nil {
			return errors.Wrap(err, "migrate exports database")
		}
	}
	exportsRepo := repo.NewExportsRepo(pool)

	session, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	exporter := newExporter(cfg, exportsRepo, log)
	tracker := usecase.NewExportTracker(exporter, exportsRepo, log)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.NewHandler(session, tracker, httpadapter.Options{
		Rasterizer: newRasterizer(cfg, log),
		Capture:    captureOptions(cfg),
		History:    exportsRepo,
		Log:        log,
	}).Register(app)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("shutdown", "error", err)
	}
	tracker.Wait()
	return nil
}
