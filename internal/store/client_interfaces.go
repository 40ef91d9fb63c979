package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultStorage persists the two flat text files of a vault: the master
// passphrase fingerprint and the encrypted record set.
//
// Both files always hold printable text only. Writes replace the whole file;
// there is no partial update. Nothing guards against two processes using the
// same files at once: the last writer wins.
type VaultStorage interface {
	// LoadFingerprint returns the first line of the fingerprint file.
	// found is false when the file does not exist, which means the vault has
	// not been initialised yet.
	LoadFingerprint(ctx context.Context) (line string, found bool, err error)

	// SaveFingerprint replaces the fingerprint file with line.
	SaveFingerprint(ctx context.Context, line string) error

	// LoadVault returns the first whitespace-delimited token of the vault
	// file. found is false when the file does not exist, which is equivalent
	// to an empty record set.
	LoadVault(ctx context.Context) (token string, found bool, err error)

	// SaveVault replaces the vault file with token.
	SaveVault(ctx context.Context, token string) error
}
