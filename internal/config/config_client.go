package config

import (
	"fmt"
	"path/filepath"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// KDF is the key derivation scheme used for new vaults.
	KDF string
	// Clipboard enables copying secrets to the clipboard.
	Clipboard bool
	// LogFile is the log destination; empty means next to the executable.
	LogFile string
	// PasswordLength is the suggested generated password length.
	PasswordLength int
}

// ClientStorage contains resolved vault file paths.
type ClientStorage struct {
	// FingerprintPath is the full path of the fingerprint file.
	FingerprintPath string
	// VaultPath is the full path of the encrypted vault file.
	VaultPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains the vault file locations.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], resolves the file paths
// against the configured directory, and validates the resulting
// [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			KDF:            cfg.App.KDF,
			Clipboard:      cfg.App.Clipboard,
			LogFile:        cfg.App.LogFile,
			PasswordLength: cfg.App.PasswordLength,
		},
		Storage: ClientStorage{
			FingerprintPath: filepath.Join(cfg.Storage.Files.Dir, cfg.Storage.Files.Fingerprint),
			VaultPath:       filepath.Join(cfg.Storage.Files.Dir, cfg.Storage.Files.Vault),
		},
	}

	return clientCfg, clientCfg.validate()
}
