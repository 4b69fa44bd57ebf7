package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/wardrisk/internal/cli"
	"github.com/alexanderramin/wardrisk/internal/config"
	"github.com/alexanderramin/wardrisk/internal/export"
	"github.com/alexanderramin/wardrisk/internal/geo"
	"github.com/alexanderramin/wardrisk/internal/mail"
	"github.com/alexanderramin/wardrisk/internal/refdata"
	"github.com/alexanderramin/wardrisk/internal/retention"
	"github.com/alexanderramin/wardrisk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Housekeeping runs once at startup; failures never block a submission.
	if cfg.RetentionDays > 0 {
		retention.Sweep(cfg.OutputRoot, cfg.RetentionDays, time.Now(), logger)
	}

	renderer := export.NewRenderer(cfg.OutputRoot)
	dispatcher := mail.NewSMTPDispatcher(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword)

	app := &cli.App{
		Config: cfg,
		Submissions: service.NewSubmissionService(renderer, dispatcher, cfg.AdminEmails,
			service.WithObserver(service.NewLogPipelineObserver(os.Stderr))),
	}

	// Reference inputs load lazily so housekeeping commands run without them.
	app.Hazards = func() ([]string, error) {
		return refdata.LoadHazards(cfg.HazardWorkbook)
	}
	app.Layer = func() (*geo.Layer, error) {
		return geo.LoadLayer(cfg.WardGeoJSON, cfg.WardIDProperty)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
