package tui

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

// Prompter reads one line of user input per call.
type Prompter interface {
	// ReadLine shows prompt and returns the typed line without its line
	// break. It returns [ErrUserQuit] when the user aborts the prompt.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// ReadSecret is like ReadLine but masks the typed characters.
	ReadSecret(ctx context.Context, prompt string) (string, error)
}

// Clipboard receives secrets the user asked to copy.
type Clipboard interface {
	WriteAll(text string) error
}

// Vault is the part of [vault.Session] the console drives. Persisting the
// session is left to the caller.
type Vault interface {
	State() vault.State
	Establish(ctx context.Context, passphrase, confirmation string) error
	Unlock(ctx context.Context, passphrase string) error
	AddEntry(service, username, secret string) error
	GetEntry(service string) (models.Entry, error)
	DeleteEntries(service string) (int, error)
	ListServices() iter.Seq[string]
}
