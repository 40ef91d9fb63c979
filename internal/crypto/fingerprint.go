// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
)

// Known fingerprint schemes.
const (
	// SchemeDigest is the unsalted single-digest scheme of the original vault
	// format. Its fingerprint line is just encode(digest(passphrase)).
	SchemeDigest = "sha256"

	// SchemeArgon2id stores a salt next to the proof:
	// argon2id$encode(salt)$encode(proof).
	SchemeArgon2id = "argon2id"
)

// schemeSeparator never occurs in codec output, so a legacy line can not be
// mistaken for a prefixed one.
const schemeSeparator = "$"

// Fingerprint is the persisted proof-of-knowledge of the master passphrase.
type Fingerprint struct {
	// Scheme names the [KeyDeriver] that produced the fingerprint.
	Scheme string
	// Salt is empty for [SchemeDigest].
	Salt []byte
	// Sum is the value compared against the derived proof on unlock.
	Sum []byte
}

// String renders the fingerprint as the single line stored on disk.
func (f Fingerprint) String() string {
	if f.Scheme == "" || f.Scheme == SchemeDigest {
		return codec.Encode(f.Sum)
	}
	return f.Scheme + schemeSeparator + codec.Encode(f.Salt) + schemeSeparator + codec.Encode(f.Sum)
}

// ParseFingerprint reads a stored fingerprint line. Parsing is lenient like
// the rest of the format: a line without a scheme prefix is a [SchemeDigest]
// fingerprint, and malformed codec text decodes to whatever prefix is valid.
func ParseFingerprint(line string) Fingerprint {
	line = strings.TrimRight(line, "\r\n")

	scheme, rest, ok := strings.Cut(line, schemeSeparator)
	if !ok {
		return Fingerprint{Scheme: SchemeDigest, Sum: codec.Decode(line)}
	}

	salt, sum, _ := strings.Cut(rest, schemeSeparator)
	return Fingerprint{
		Scheme: scheme,
		Salt:   codec.Decode(salt),
		Sum:    codec.Decode(sum),
	}
}
