package crypto

import "errors"

// ErrUnknownScheme is returned when a fingerprint or configuration names a
// key derivation scheme that is not registered.
var ErrUnknownScheme = errors.New("unknown key derivation scheme")
