package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (VaultStorage, config.ClientStorage) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.ClientStorage{
		FingerprintPath: filepath.Join(dir, "master.hash"),
		VaultPath:       filepath.Join(dir, "vault.dat"),
	}
	return NewFileVaultStorage(cfg, logger.Nop()), cfg
}

// ── fingerprint ──────────────────────────────────────────────────────────────

func TestFileVaultStorage_LoadFingerprint_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	line, found, err := s.LoadFingerprint(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, line)
}

func TestFileVaultStorage_FingerprintRoundTrip(t *testing.T) {
	s, cfg := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFingerprint(ctx, "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg="))

	line, found, err := s.LoadFingerprint(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg=", line)

	info, err := os.Stat(cfg.FingerprintPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileVaultStorage_LoadFingerprint_FirstLineOnly(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.WriteFile(cfg.FingerprintPath, []byte("first\r\nsecond\n"), 0o600))

	line, found, err := s.LoadFingerprint(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "first", line)
}

func TestFileVaultStorage_LoadFingerprint_EmptyFileIsFound(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.WriteFile(cfg.FingerprintPath, nil, 0o600))

	line, found, err := s.LoadFingerprint(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, line)
}

func TestFileVaultStorage_SaveFingerprint_Truncates(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.WriteFile(cfg.FingerprintPath, []byte("a much longer previous content\n"), 0o600))

	require.NoError(t, s.SaveFingerprint(context.Background(), "short"))

	data, err := os.ReadFile(cfg.FingerprintPath)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

// ── vault ────────────────────────────────────────────────────────────────────

func TestFileVaultStorage_LoadVault_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	token, found, err := s.LoadVault(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, token)
}

func TestFileVaultStorage_VaultRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVault(ctx, "QUJD"))
	require.NoError(t, s.SaveVault(ctx, "REVG"))

	token, found, err := s.LoadVault(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "REVG", token)
}

func TestFileVaultStorage_LoadVault_FirstToken(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.WriteFile(cfg.VaultPath, []byte("  QUJD trailing junk\n"), 0o600))

	token, found, err := s.LoadVault(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "QUJD", token)
}

func TestFileVaultStorage_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "vault")
	s := NewFileVaultStorage(config.ClientStorage{
		FingerprintPath: filepath.Join(dir, "master.hash"),
		VaultPath:       filepath.Join(dir, "vault.dat"),
	}, logger.Nop())

	require.NoError(t, s.SaveVault(context.Background(), "QQ=="))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "vault.dat", entries[0].Name())
}

func TestFileVaultStorage_ReadErrorOnDirectory(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.Mkdir(cfg.VaultPath, 0o700))

	_, _, err := s.LoadVault(context.Background())
	assert.ErrorIs(t, err, ErrReadingFile)
}

func TestFileVaultStorage_WriteErrorOnDirectory(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.Mkdir(cfg.VaultPath, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.VaultPath, "child"), nil, 0o600))

	err := s.SaveVault(context.Background(), "QQ==")
	assert.ErrorIs(t, err, ErrWritingFile)
}

func TestFileVaultStorage_CancelledContext(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.LoadVault(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveVault(ctx, "x"), context.Canceled)
	assert.ErrorIs(t, s.SaveFingerprint(ctx, "x"), context.Canceled)
	_, _, err = s.LoadFingerprint(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
