package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App runs one vault session from authentication to the final save.
type App struct {
	session *vault.Session
	console *tui.Console

	logger *logger.Logger
}

// NewApp opens the vault described by cfg and attaches a terminal console
// on stdin and stdout.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	derivers, err := crypto.DefaultDerivers(cfg.App.KDF)
	if err != nil {
		return nil, fmt.Errorf("select key derivation: %w", err)
	}

	storage := store.NewFileVaultStorage(cfg.Storage, log)
	session, err := vault.Open(ctx, storage, crypto.NewXORCipher(), derivers, log)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	services, err := service.NewServices(log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	opts := tui.ConsoleOptions{
		Out:            os.Stdout,
		BuildInfo:      info,
		PasswordLength: cfg.App.PasswordLength,
	}
	if cfg.App.Clipboard {
		clip, err := tui.NewSystemClipboard()
		if err != nil {
			log.Warn().Err(err).Msg("clipboard disabled")
		} else {
			opts.Clipboard = clip
		}
	}

	prompter := tui.NewTerminalPrompter(os.Stdin, os.Stdout)
	console := tui.NewConsole(session, prompter, services, validators.NewEntryValidator(), opts, log)

	return newApp(session, console, log), nil
}

func newApp(session *vault.Session, console *tui.Console, log *logger.Logger) *App {
	return &App{
		session: session,
		console: console,
		logger:  log.WithComponent("app"),
	}
}

// Run authenticates, runs the command loop and persists the vault. Nothing
// is written when authentication fails or the loop ends with an error; the
// only persistence point is the save after a regular quit.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.console.Authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	if err := a.console.Run(ctx); err != nil {
		a.logger.Error().Err(err).Msg("command loop aborted, changes discarded")
		return fmt.Errorf("command loop: %w", err)
	}

	if err := a.session.Close(ctx); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	a.console.ReportSaved()
	a.logger.Info().Msg("vault saved")
	return nil
}
