package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/money-tracker/internal/adapter"
	"github.com/MKhiriev/money-tracker/internal/client"
	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 1
	}

	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700)
	log := logger.NewClientLogger("money-client", cfg.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app, err := client.NewApp(serverAdapter, client.NewFileTokenStore(cfg.Session.TokenFile), log,
		client.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)),
	)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, client.ErrNoCommand) {
			fmt.Fprintln(os.Stderr, client.Describe(err))
		}
		return 1
	}

	return 0
}
