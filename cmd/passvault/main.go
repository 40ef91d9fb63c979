package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
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
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-pass-vault", os.Stderr).Error().Err(err).Msg("error getting configs")
		return 1
	}

	log, closeLog := logger.NewClientLogger("go-pass-vault", cfg.App.LogFile)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 1
	}

	if err = app.Run(ctx); err != nil {
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			log.Info().Msg("quit before unlocking")
			return 0
		case errors.Is(err, vault.ErrAuthentication), errors.Is(err, vault.ErrMismatch):
			// already reported by the console
		default:
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		log.Error().Err(err).Msg("client run error")
		return 1
	}

	return 0
}
