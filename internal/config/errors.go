package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid vault file settings
	// (for example, an empty file name or both files on the same path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown key derivation scheme).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
