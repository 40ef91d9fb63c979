// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix = prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       = direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the key derivation
	// scheme for new vaults and the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the fingerprint and vault files.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KDF names the key derivation scheme used when a new master passphrase
	// is established ("sha256" or "argon2id"). Existing vaults keep the
	// scheme recorded in their fingerprint file.
	// Env: APP_KDF
	KDF string `env:"KDF"`

	// Clipboard enables copying the secret to the system clipboard on get.
	// Env: APP_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`

	// LogFile is where the JSON log is appended. Defaults to "logs" next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// PasswordLength is the length suggested when generating a password.
	// Env: APP_PASSWORD_LENGTH
	PasswordLength int `env:"PASSWORD_LENGTH"`
}

// Storage groups the configuration for the vault files.
type Storage struct {
	// Files holds the file-system locations of the vault files.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the file-system settings for the fingerprint and vault files.
type Files struct {
	// Dir is the directory both files live in. Empty means the working
	// directory.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// Fingerprint is the name of the master passphrase fingerprint file.
	// Env: STORAGE_FILES_FINGERPRINT
	Fingerprint string `env:"FINGERPRINT"`

	// Vault is the name of the encrypted vault file.
	// Env: STORAGE_FILES_VAULT
	Vault string `env:"VAULT"`
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDF:            "sha256",
			PasswordLength: 16,
		},
		Storage: Storage{
			Files: Files{
				Fingerprint: "master.hash",
				Vault:       "vault.dat",
			},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
