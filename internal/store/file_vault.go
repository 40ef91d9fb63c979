// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// fileMode keeps vault files readable by the owner only.
const fileMode = 0o600

// fileVaultStorage is the default implementation of [VaultStorage]. It keeps
// the fingerprint and the vault in two files on the local filesystem.
type fileVaultStorage struct {
	fingerprintPath string
	vaultPath       string

	logger *logger.Logger
}

// NewFileVaultStorage constructs a [VaultStorage] over the paths in cfg.
// Neither file has to exist yet; missing parent directories are created on
// the first write.
func NewFileVaultStorage(cfg config.ClientStorage, log *logger.Logger) VaultStorage {
	return &fileVaultStorage{
		fingerprintPath: cfg.FingerprintPath,
		vaultPath:       cfg.VaultPath,
		logger:          log.WithComponent("store"),
	}
}

// LoadFingerprint implements [VaultStorage]. Only the first line is read;
// the trailing line break, if any, is stripped.
func (s *fileVaultStorage) LoadFingerprint(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	f, err := os.Open(s.fingerprintPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	s.logger.Debug().Str("path", s.fingerprintPath).Msg("fingerprint loaded")
	return strings.TrimRight(line, "\r\n"), true, nil
}

// SaveFingerprint implements [VaultStorage].
func (s *fileVaultStorage) SaveFingerprint(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := replaceFile(s.fingerprintPath, line); err != nil {
		return err
	}

	s.logger.Debug().Str("path", s.fingerprintPath).Msg("fingerprint saved")
	return nil
}

// LoadVault implements [VaultStorage]. The vault file holds a single token;
// anything after the first whitespace is ignored.
func (s *fileVaultStorage) LoadVault(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.vaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var token string
	if fields := strings.Fields(string(data)); len(fields) > 0 {
		token = fields[0]
	}

	s.logger.Debug().Str("path", s.vaultPath).Int("size", len(token)).Msg("vault loaded")
	return token, true, nil
}

// SaveVault implements [VaultStorage].
func (s *fileVaultStorage) SaveVault(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := replaceFile(s.vaultPath, token); err != nil {
		return err
	}

	s.logger.Debug().Str("path", s.vaultPath).Int("size", len(token)).Msg("vault saved")
	return nil
}

// replaceFile writes content to a temporary file next to path and renames it
// over path, so readers see either the old or the new content.
func replaceFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return nil
}
