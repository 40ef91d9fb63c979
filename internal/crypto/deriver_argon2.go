// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/digest"
	"golang.org/x/crypto/argon2"
)

// authContext domain-separates the stored proof from the vault key itself.
const authContext = "pass-vault-auth"

// argon2Deriver is the private implementation of [KeyDeriver] for
// [SchemeArgon2id].
type argon2Deriver struct {
	// Argon2id tuning parameters. They are part of the scheme: changing them
	// makes existing argon2id fingerprints unverifiable.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int

	random io.Reader
}

// NewArgon2Deriver constructs a salted [KeyDeriver] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The vault key is Argon2id(passphrase, salt) and the stored proof is
// digest(key ‖ authContext), so the fingerprint never reveals the key.
func NewArgon2Deriver() KeyDeriver {
	return newArgon2Deriver(1, 64*1024, 4)
}

func newArgon2Deriver(time, memory uint32, threads uint8) *argon2Deriver {
	return &argon2Deriver{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
		saltLen:      16,
		random:       rand.Reader,
	}
}

// Scheme implements [KeyDeriver].
func (a *argon2Deriver) Scheme() string {
	return SchemeArgon2id
}

// Enroll implements [KeyDeriver]. Returns an error if the salt can not be
// read from the OS CSPRNG.
func (a *argon2Deriver) Enroll(passphrase string) ([]byte, Fingerprint, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(a.random, salt); err != nil {
		return nil, Fingerprint{}, fmt.Errorf("generate salt: %w", err)
	}

	key := a.deriveKey(passphrase, salt)
	fp := Fingerprint{
		Scheme: SchemeArgon2id,
		Salt:   salt,
		Sum:    proof(key),
	}
	return key, fp, nil
}

// Verify implements [KeyDeriver].
func (a *argon2Deriver) Verify(passphrase string, fp Fingerprint) ([]byte, bool) {
	key := a.deriveKey(passphrase, fp.Salt)
	if subtle.ConstantTimeCompare(proof(key), fp.Sum) != 1 {
		return nil, false
	}
	return key, true
}

func (a *argon2Deriver) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, a.argonTime, a.argonMemory, a.argonThreads, a.argonKeyLen)
}

func proof(key []byte) []byte {
	e := digest.New()
	e.Write(key)
	e.Write([]byte(authContext)) // authContext domain-separates the proof from the key
	return e.Sum(nil)
}
