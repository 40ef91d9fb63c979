// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Prompts and messages of the line-oriented console.
const (
	promptMaster   = "Enter master password: "
	promptConfirm  = "Confirm: "
	promptCommand  = "[A]dd [G]et [D]el [L]ist [Q]uit: "
	promptService  = "Service: "
	promptUser     = "User:    "
	promptPass     = "Pass:    "
	promptGenerate = "Generate a random password? (y/N) "
	promptClasses  = "  Classes? l=lower u=upper d=digits s=symbols [lud] "

	msgNoMaster      = "No master set; create one."
	msgMasterSaved   = "Master password saved."
	msgWrongMaster   = "Wrong master password."
	msgMismatch      = "passwords did not match."
	msgEntryAdded    = "Entry added."
	msgNotFound      = "<not found>"
	msgCancelled     = "Cancelled."
	msgCopied        = "  (password copied to clipboard)"
	msgVaultSaved    = "Vault saved. Goodbye!"
	defaultClassKeys = "lud"
)

// ConsoleOptions tunes a [Console]. The zero value writes nowhere useful;
// Out is required.
type ConsoleOptions struct {
	Out io.Writer
	// Clipboard receives the secret shown by the get command. Nil disables
	// copying.
	Clipboard Clipboard
	BuildInfo models.AppBuildInfo
	// PasswordLength is offered as the default length of generated
	// passwords.
	PasswordLength int
}

// Console is the interactive front end of a vault session: it asks for the
// master passphrase and then runs the add/get/delete/list command loop.
type Console struct {
	vault     Vault
	prompter  Prompter
	generator service.PasswordGenerator
	validator validators.Validator

	out            io.Writer
	clipboard      Clipboard
	info           models.AppBuildInfo
	passwordLength int

	logger *logger.Logger
}

// NewConsole wires a [Console] to an open vault session.
func NewConsole(v Vault, prompter Prompter, services *service.Services, validator validators.Validator, opts ConsoleOptions, log *logger.Logger) *Console {
	length := opts.PasswordLength
	if length <= 0 {
		length = 16
	}

	return &Console{
		vault:          v,
		prompter:       prompter,
		generator:      services.PasswordGenerator,
		validator:      validator,
		out:            opts.Out,
		clipboard:      opts.Clipboard,
		info:           opts.BuildInfo,
		passwordLength: length,
		logger:         log.WithComponent("console"),
	}
}

// Authenticate prints the banner and asks for the master passphrase. A new
// vault asks a second time for confirmation and establishes the passphrase;
// an existing one is unlocked. [vault.ErrMismatch] and
// [vault.ErrAuthentication] are reported to the user and returned; the
// caller must then stop without persisting anything.
func (c *Console) Authenticate(ctx context.Context) error {
	fmt.Fprintln(c.out, renderBanner(c.info))

	passphrase, err := c.prompter.ReadSecret(ctx, promptMaster)
	if err != nil {
		return err
	}

	switch state := c.vault.State(); state {
	case vault.StateUninitialized:
		fmt.Fprintln(c.out, msgNoMaster)
		confirmation, err := c.prompter.ReadSecret(ctx, promptConfirm)
		if err != nil {
			return err
		}

		err = c.vault.Establish(ctx, passphrase, confirmation)
		if errors.Is(err, vault.ErrMismatch) {
			c.printError(msgMismatch)
			return err
		}
		if err != nil {
			c.printError(err.Error())
			return err
		}
		c.printSuccess(msgMasterSaved)

	case vault.StateLocked:
		err = c.vault.Unlock(ctx, passphrase)
		if errors.Is(err, vault.ErrAuthentication) {
			c.printError(msgWrongMaster)
			return err
		}
		if err != nil {
			c.printError(err.Error())
			return err
		}

	default:
		return fmt.Errorf("%w: vault is %s", vault.ErrInvalidState, state)
	}

	c.logger.Info().Msg("authenticated")
	return nil
}

// Run executes commands until the user quits. Aborting the command prompt
// counts as quitting; aborting a prompt inside a command cancels only that
// command. Unknown commands are ignored.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out)
		line, err := c.prompter.ReadLine(ctx, promptCommand)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd := command(line)
		c.logger.Debug().Str("command", string(cmd)).Msg("command received")

		switch cmd {
		case 'q':
			return nil
		case 'a':
			err = c.add(ctx)
		case 'g':
			err = c.get(ctx)
		case 'd':
			err = c.del(ctx)
		case 'l':
			c.list()
		}

		if errors.Is(err, ErrUserQuit) {
			fmt.Fprintln(c.out, msgCancelled)
			continue
		}
		if err != nil {
			return err
		}
	}
}

// ReportSaved tells the user the vault was persisted.
func (c *Console) ReportSaved() {
	c.printSuccess(msgVaultSaved)
}

func (c *Console) add(ctx context.Context) error {
	var (
		entry models.Entry
		err   error
	)

	if entry.Service, err = c.prompter.ReadLine(ctx, promptService); err != nil {
		return err
	}
	if !c.valid(ctx, entry, validators.FieldService) {
		return nil
	}

	if entry.Username, err = c.prompter.ReadLine(ctx, promptUser); err != nil {
		return err
	}
	if !c.valid(ctx, entry, validators.FieldUsername) {
		return nil
	}

	choice, err := c.prompter.ReadLine(ctx, promptGenerate)
	if err != nil {
		return err
	}

	if yes(choice) {
		if entry.Secret, err = c.generate(ctx); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "  Generated: %s\n", entry.Secret)
	} else {
		if entry.Secret, err = c.prompter.ReadSecret(ctx, promptPass); err != nil {
			return err
		}
		if !c.valid(ctx, entry, validators.FieldSecret) {
			return nil
		}
	}

	if err = c.vault.AddEntry(entry.Service, entry.Username, entry.Secret); err != nil {
		return err
	}

	c.printSuccess(msgEntryAdded)
	return nil
}

// generate asks for the length and the character classes until the
// generator accepts them.
func (c *Console) generate(ctx context.Context) (string, error) {
	opts := models.DefaultPasswordOptions(c.passwordLength)

	for {
		line, err := c.prompter.ReadLine(ctx, fmt.Sprintf("  Length? [%d] ", c.passwordLength))
		if err != nil {
			return "", err
		}

		opts.Length = c.passwordLength
		if line = strings.TrimSpace(line); line != "" {
			n, convErr := strconv.Atoi(line)
			if convErr != nil {
				c.printError(fmt.Sprintf("%v: %q", validators.ErrInvalidLength, line))
				continue
			}
			opts.Length = n
		}

		if c.valid(ctx, opts, validators.FieldLength) {
			break
		}
	}

	for {
		line, err := c.prompter.ReadLine(ctx, promptClasses)
		if err != nil {
			return "", err
		}
		setClasses(&opts, line)

		secret, err := c.generator.Generate(opts)
		if errors.Is(err, service.ErrNoCharacterClasses) {
			c.printError(err.Error())
			continue
		}
		if err != nil {
			return "", err
		}
		return secret, nil
	}
}

func (c *Console) get(ctx context.Context) error {
	svc, err := c.prompter.ReadLine(ctx, promptService)
	if err != nil {
		return err
	}

	entry, err := c.vault.GetEntry(svc)
	if errors.Is(err, vault.ErrNotFound) {
		fmt.Fprintln(c.out, msgNotFound)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "User: %s, Pass: %s\n", entry.Username, entry.Secret)

	if c.clipboard != nil {
		if err = c.clipboard.WriteAll(entry.Secret); err != nil {
			c.logger.Warn().Err(err).Msg("clipboard write failed")
			c.printError(err.Error())
			return nil
		}
		fmt.Fprintln(c.out, helpStyle.Render(msgCopied))
	}
	return nil
}

func (c *Console) del(ctx context.Context) error {
	svc, err := c.prompter.ReadLine(ctx, promptService)
	if err != nil {
		return err
	}

	n, err := c.vault.DeleteEntries(svc)
	if errors.Is(err, vault.ErrNotFound) {
		fmt.Fprintln(c.out, msgNotFound)
		return nil
	}
	if err != nil {
		return err
	}

	c.printSuccess(fmt.Sprintf("Deleted %d %s.", n, plural(n, "entry", "entries")))
	return nil
}

func (c *Console) list() {
	for svc := range c.vault.ListServices() {
		fmt.Fprintf(c.out, " - %s\n", svc)
	}
}

// valid reports validation failures to the user instead of returning them.
func (c *Console) valid(ctx context.Context, value any, fields ...string) bool {
	if err := c.validator.Validate(ctx, value, fields...); err != nil {
		c.printError(err.Error())
		return false
	}
	return true
}

func (c *Console) printError(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render("ERROR: "+msg))
}

func (c *Console) printSuccess(msg string) {
	fmt.Fprintln(c.out, successStyle.Render(msg))
}

// command returns the lowercased first character of line, or 0.
func command(line string) byte {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0
	}
	return strings.ToLower(line[:1])[0]
}

func yes(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}

// setClasses enables the classes named by the letters in line. An empty line
// selects lowercase, uppercase and digits; unknown letters are ignored.
func setClasses(opts *models.PasswordOptions, line string) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		line = defaultClassKeys
	}

	opts.Lower = strings.ContainsRune(line, 'l')
	opts.Upper = strings.ContainsRune(line, 'u')
	opts.Digits = strings.ContainsRune(line, 'd')
	opts.Symbols = strings.ContainsRune(line, 's')
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
