// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// supportedKDFs lists the key derivation schemes a new vault may use.
var supportedKDFs = []string{"sha256", "argon2id"}

// maxPasswordLength bounds the suggested generated password length.
const maxPasswordLength = 1024

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDF != "" && !slices.Contains(supportedKDFs, cfg.App.KDF) {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordLength < 0 || cfg.App.PasswordLength > maxPasswordLength {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.FingerprintPath == "" || cfg.Storage.VaultPath == "" ||
		cfg.Storage.FingerprintPath == cfg.Storage.VaultPath {
		return ErrInvalidStorageConfigs
	}

	if !slices.Contains(supportedKDFs, cfg.App.KDF) {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordLength < 1 || cfg.App.PasswordLength > maxPasswordLength {
		return ErrInvalidAppConfigs
	}

	return nil
}
