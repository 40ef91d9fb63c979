package vault

import "errors"

// Session errors. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrAuthentication is returned by [Session.Unlock] when the passphrase
	// does not match the stored fingerprint. It is fatal to the session:
	// nothing is loaded and nothing may be persisted.
	ErrAuthentication = errors.New("wrong master passphrase")

	// ErrMismatch is returned by [Session.Establish] when the confirmation
	// differs from the passphrase. It is fatal to the session.
	ErrMismatch = errors.New("passphrase and confirmation do not match")

	// ErrNotFound is returned by lookups and deletes that match no entry.
	// The session state is unchanged.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidState is returned when an operation is called in a state
	// that does not allow it, for example AddEntry on a locked vault.
	ErrInvalidState = errors.New("operation not allowed in current vault state")

	// ErrClosed is returned by operations on a closed session.
	ErrClosed = errors.New("vault session is closed")
)
