package tui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type consoleFixture struct {
	console   *Console
	prompter  *mock.MockPrompter
	generator *mock.MockPasswordGenerator
	clipboard *mock.MockClipboard
	session   *vault.Session
	out       *bytes.Buffer
}

// openSession returns a session over fresh files in a temp dir. With a
// non-empty passphrase the vault is created and closed first, so the
// returned session is locked.
func openSession(t *testing.T, passphrase string) *vault.Session {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	storage := store.NewFileVaultStorage(config.ClientStorage{
		FingerprintPath: filepath.Join(dir, "master.hash"),
		VaultPath:       filepath.Join(dir, "vault.dat"),
	}, logger.Nop())

	open := func() *vault.Session {
		derivers, err := crypto.DefaultDerivers("")
		require.NoError(t, err)
		s, err := vault.Open(ctx, storage, crypto.NewXORCipher(), derivers, logger.Nop())
		require.NoError(t, err)
		return s
	}

	if passphrase == "" {
		return open()
	}

	s := open()
	require.NoError(t, s.Establish(ctx, passphrase, passphrase))
	require.NoError(t, s.Close(ctx))
	return open()
}

// unlockedSession returns an established, unlocked session.
func unlockedSession(t *testing.T) *vault.Session {
	t.Helper()
	s := openSession(t, "")
	require.NoError(t, s.Establish(context.Background(), "pw", "pw"))
	return s
}

func newConsoleFixture(t *testing.T, ctrl *gomock.Controller, session *vault.Session, withClipboard bool) *consoleFixture {
	t.Helper()
	f := &consoleFixture{
		prompter:  mock.NewMockPrompter(ctrl),
		generator: mock.NewMockPasswordGenerator(ctrl),
		session:   session,
		out:       &bytes.Buffer{},
	}

	opts := ConsoleOptions{Out: f.out, PasswordLength: 16}
	if withClipboard {
		f.clipboard = mock.NewMockClipboard(ctrl)
		opts.Clipboard = f.clipboard
	}

	services := &service.Services{PasswordGenerator: f.generator}
	f.console = NewConsole(session, f.prompter, services, validators.NewEntryValidator(), opts, logger.Nop())
	return f
}

func (f *consoleFixture) line(prompt, answer string) *gomock.Call {
	return f.prompter.EXPECT().ReadLine(gomock.Any(), prompt).Return(answer, nil)
}

func (f *consoleFixture) secret(prompt, answer string) *gomock.Call {
	return f.prompter.EXPECT().ReadSecret(gomock.Any(), prompt).Return(answer, nil)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestConsole_Authenticate_NewVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, openSession(t, ""), false)
	gomock.InOrder(
		f.secret(promptMaster, "pw"),
		f.secret(promptConfirm, "pw"),
	)

	require.NoError(t, f.console.Authenticate(context.Background()))
	assert.Equal(t, vault.StateUnlocked, f.session.State())
	assert.Contains(t, f.out.String(), appTitle)
	assert.Contains(t, f.out.String(), msgNoMaster)
	assert.Contains(t, f.out.String(), msgMasterSaved)
}

func TestConsole_Authenticate_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, openSession(t, ""), false)
	gomock.InOrder(
		f.secret(promptMaster, "pw"),
		f.secret(promptConfirm, "pw2"),
	)

	err := f.console.Authenticate(context.Background())
	require.ErrorIs(t, err, vault.ErrMismatch)
	assert.Contains(t, f.out.String(), "ERROR: "+msgMismatch)
	assert.Equal(t, vault.StateUninitialized, f.session.State())
}

func TestConsole_Authenticate_Unlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, openSession(t, "master"), false)
	f.secret(promptMaster, "master")

	require.NoError(t, f.console.Authenticate(context.Background()))
	assert.Equal(t, vault.StateUnlocked, f.session.State())
	assert.NotContains(t, f.out.String(), msgNoMaster)
}

func TestConsole_Authenticate_WrongPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, openSession(t, "master"), false)
	f.secret(promptMaster, "nope")

	err := f.console.Authenticate(context.Background())
	require.ErrorIs(t, err, vault.ErrAuthentication)
	assert.Contains(t, f.out.String(), "ERROR: "+msgWrongMaster)
	assert.Equal(t, vault.StateLocked, f.session.State())
}

func TestConsole_Authenticate_UserQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, openSession(t, "master"), false)
	f.prompter.EXPECT().ReadSecret(gomock.Any(), promptMaster).Return("", ErrUserQuit)

	assert.ErrorIs(t, f.console.Authenticate(context.Background()), ErrUserQuit)
}

func TestConsole_Authenticate_UnexpectedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockVault(ctrl)
	v.EXPECT().State().Return(vault.StateClosed)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().ReadSecret(gomock.Any(), promptMaster).Return("pw", nil)

	c := NewConsole(v, prompter, &service.Services{}, validators.NewEntryValidator(), ConsoleOptions{Out: &bytes.Buffer{}}, logger.Nop())
	assert.ErrorIs(t, c.Authenticate(context.Background()), vault.ErrInvalidState)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestConsole_Run_AddGetListQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.line(promptUser, "alice"),
		f.line(promptGenerate, ""),
		f.secret(promptPass, "hunter2"),

		f.line(promptCommand, "G"),
		f.line(promptService, "mail"),

		f.line(promptCommand, "l"),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, msgEntryAdded)
	assert.Contains(t, out, "User: alice, Pass: hunter2\n")
	assert.Contains(t, out, " - mail\n")
	assert.Equal(t, []string{"mail"}, slices.Collect(f.session.ListServices()))
}

func TestConsole_Run_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "g"),
		f.line(promptService, "bank"),
		f.line(promptCommand, "Q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), msgNotFound)
}

func TestConsole_Run_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := unlockedSession(t)
	require.NoError(t, s.AddEntry("mail", "a", "1"))
	require.NoError(t, s.AddEntry("bank", "b", "2"))
	require.NoError(t, s.AddEntry("mail", "c", "3"))

	f := newConsoleFixture(t, ctrl, s, false)
	gomock.InOrder(
		f.line(promptCommand, "d"),
		f.line(promptService, "mail"),
		f.line(promptCommand, "d"),
		f.line(promptService, "mail"),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), "Deleted 2 entries.")
	assert.Contains(t, f.out.String(), msgNotFound)
	assert.Equal(t, []string{"bank"}, slices.Collect(s.ListServices()))
}

func TestConsole_Run_GenerateWithMockGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.line(promptUser, "alice"),
		f.line(promptGenerate, "y"),
		f.line("  Length? [16] ", "20"),
		f.line(promptClasses, "ls"),
		f.generator.EXPECT().
			Generate(models.PasswordOptions{Length: 20, Lower: true, Symbols: true}).
			Return("generated-secret", nil),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), "  Generated: generated-secret\n")

	e, err := f.session.GetEntry("mail")
	require.NoError(t, err)
	assert.Equal(t, "generated-secret", e.Secret)
}

func TestConsole_Run_GenerateRepromptsOnBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.line(promptUser, "alice"),
		f.line(promptGenerate, "Yes"),
		f.line("  Length? [16] ", "abc"),
		f.line("  Length? [16] ", "0"),
		f.line("  Length? [16] ", ""),
		f.line(promptClasses, "x"),
		f.generator.EXPECT().
			Generate(models.PasswordOptions{Length: 16}).
			Return("", service.ErrNoCharacterClasses),
		f.line(promptClasses, ""),
		f.generator.EXPECT().
			Generate(models.DefaultPasswordOptions(16)).
			Return("abcABC123abcABC1", nil),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, validators.ErrInvalidLength.Error())
	assert.Contains(t, out, service.ErrNoCharacterClasses.Error())
	assert.Contains(t, out, msgEntryAdded)
}

func TestConsole_Run_GeneratorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("entropy exhausted")
	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.line(promptUser, "alice"),
		f.line(promptGenerate, "y"),
		f.line("  Length? [16] ", ""),
		f.line(promptClasses, ""),
		f.generator.EXPECT().Generate(gomock.Any()).Return("", boom),
	)

	assert.ErrorIs(t, f.console.Run(context.Background()), boom)
}

func TestConsole_Run_RejectsSecretWithSeparator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.line(promptUser, "alice"),
		f.line(promptGenerate, "n"),
		f.secret(promptPass, "pa:ss"),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), validators.ErrSeparatorInSecret.Error())
	assert.Zero(t, f.session.Len())
}

func TestConsole_Run_RejectsServiceWithSeparator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "https://mail.example"),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), validators.ErrSeparatorInService.Error())
	assert.Zero(t, f.session.Len())
}

func TestConsole_Run_RejectsEmptyService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, ""),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), validators.ErrEmptyService.Error())
}

func TestConsole_Run_CancelInsideCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "a"),
		f.line(promptService, "mail"),
		f.prompter.EXPECT().ReadLine(gomock.Any(), promptUser).Return("", ErrUserQuit),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), msgCancelled)
	assert.Zero(t, f.session.Len())
}

func TestConsole_Run_QuitFromCommandPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	f.prompter.EXPECT().ReadLine(gomock.Any(), promptCommand).Return("", ErrUserQuit)

	assert.NoError(t, f.console.Run(context.Background()))
}

func TestConsole_Run_UnknownCommandIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	gomock.InOrder(
		f.line(promptCommand, "x"),
		f.line(promptCommand, ""),
		f.line(promptCommand, "quit"),
	)

	assert.NoError(t, f.console.Run(context.Background()))
}

func TestConsole_Run_PrompterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ioErr := errors.New("tty gone")
	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	f.prompter.EXPECT().ReadLine(gomock.Any(), promptCommand).Return("", ioErr)

	assert.ErrorIs(t, f.console.Run(context.Background()), ioErr)
}

func TestConsole_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	assert.ErrorIs(t, f.console.Run(ctx), context.Canceled)
}

// ── clipboard ────────────────────────────────────────────────────────────────

func TestConsole_Run_GetCopiesSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := unlockedSession(t)
	require.NoError(t, s.AddEntry("mail", "alice", "hunter2"))

	f := newConsoleFixture(t, ctrl, s, true)
	gomock.InOrder(
		f.line(promptCommand, "g"),
		f.line(promptService, "mail"),
		f.clipboard.EXPECT().WriteAll("hunter2").Return(nil),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), msgCopied)
}

func TestConsole_Run_ClipboardFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := unlockedSession(t)
	require.NoError(t, s.AddEntry("mail", "alice", "hunter2"))

	f := newConsoleFixture(t, ctrl, s, true)
	gomock.InOrder(
		f.line(promptCommand, "g"),
		f.line(promptService, "mail"),
		f.clipboard.EXPECT().WriteAll("hunter2").Return(errors.New("no xclip")),
		f.line(promptCommand, "q"),
	)

	require.NoError(t, f.console.Run(context.Background()))
	assert.Contains(t, f.out.String(), "ERROR: no xclip")
	assert.NotContains(t, f.out.String(), msgCopied)
}

func TestConsole_ReportSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConsoleFixture(t, ctrl, unlockedSession(t), false)
	f.console.ReportSaved()
	assert.Contains(t, f.out.String(), msgVaultSaved)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestCommand(t *testing.T) {
	assert.Equal(t, byte('a'), command("A"))
	assert.Equal(t, byte('g'), command("  get"))
	assert.Equal(t, byte(0), command(""))
	assert.Equal(t, byte(0), command("   "))
}

func TestYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " y"} {
		assert.True(t, yes(s), s)
	}
	for _, s := range []string{"", "n", "N", "x"} {
		assert.False(t, yes(s), s)
	}
}

func TestSetClasses(t *testing.T) {
	var opts models.PasswordOptions

	setClasses(&opts, "")
	assert.Equal(t, models.DefaultPasswordOptions(0), opts)

	setClasses(&opts, "S D")
	assert.Equal(t, models.PasswordOptions{Digits: true, Symbols: true}, opts)

	setClasses(&opts, "zzz")
	assert.False(t, opts.HasClasses())
}
