package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-dir directory holding the vault files
//	-fingerprint fingerprint file name
//	-vault vault file name
//	-kdf key derivation scheme for new vaults (sha256, argon2id)
//	-clipboard copy secrets to the clipboard on get
//	-log log file path
//	-length default generated password length
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("passvault", flag.ContinueOnError)
	fs.StringVar(&cfg.Storage.Files.Dir, "dir", "", "Directory holding the vault files")
	fs.StringVar(&cfg.Storage.Files.Fingerprint, "fingerprint", "", "Fingerprint file name")
	fs.StringVar(&cfg.Storage.Files.Vault, "vault", "", "Vault file name")
	fs.StringVar(&cfg.App.KDF, "kdf", "", "Key derivation scheme for new vaults (sha256, argon2id)")
	fs.BoolVar(&cfg.App.Clipboard, "clipboard", false, "Copy secrets to the clipboard on get")
	fs.StringVar(&cfg.App.LogFile, "log", "", "Log file path")
	fs.IntVar(&cfg.App.PasswordLength, "length", 0, "Default generated password length")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
