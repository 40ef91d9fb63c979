// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"

	"github.com/MKhiriev/go-pass-vault/internal/digest"
)

// digestDeriver is the private implementation of [KeyDeriver] for
// [SchemeDigest].
type digestDeriver struct{}

// NewDigestDeriver returns the [KeyDeriver] of the original vault format:
// key = digest(passphrase) and the fingerprint is the same digest.
//
// There is no salt and no iteration count. The scheme is kept because
// existing fingerprint files were computed this way and are never re-derived.
func NewDigestDeriver() KeyDeriver {
	return digestDeriver{}
}

// Scheme implements [KeyDeriver].
func (digestDeriver) Scheme() string {
	return SchemeDigest
}

// Enroll implements [KeyDeriver]. It never fails.
func (digestDeriver) Enroll(passphrase string) ([]byte, Fingerprint, error) {
	sum := digest.Sum256([]byte(passphrase))
	fp := Fingerprint{
		Scheme: SchemeDigest,
		Sum:    append([]byte(nil), sum[:]...),
	}
	return sum[:], fp, nil
}

// Verify implements [KeyDeriver]. The comparison is byte-for-byte over the
// full digest; a stored value of any other length never matches.
func (digestDeriver) Verify(passphrase string, fp Fingerprint) ([]byte, bool) {
	sum := digest.Sum256([]byte(passphrase))
	if subtle.ConstantTimeCompare(sum[:], fp.Sum) != 1 {
		return nil, false
	}
	return sum[:], true
}
