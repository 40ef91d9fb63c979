package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// StreamCipher protects the serialized record set before it is written to
// disk. Implementations must be length preserving.
//
// The bundled [NewXORCipher] is a minimal confidentiality layer kept for
// compatibility with existing vault files: it has no integrity protection and
// reuses the key stream across the whole message.
type StreamCipher interface {
	// Crypt transforms data with key and returns a new slice. For the XOR
	// cipher the operation is its own inverse, so it both encrypts and
	// decrypts.
	Crypt(data, key []byte) []byte
}

// KeyDeriver turns a master passphrase into the symmetric vault key and the
// fingerprint that proves knowledge of the passphrase.
//
// The session never looks inside a [Fingerprint]; it only asks a deriver to
// enroll a new passphrase or verify one against a stored value. A stronger
// scheme can therefore be added without touching the session state machine.
//
// Schema:
//
//	key, fp = Enroll(passphrase)         first run, fp is persisted
//	key, ok = Verify(passphrase, fp)     every later run
type KeyDeriver interface {
	// Scheme returns the identifier written into fingerprints produced by
	// this deriver.
	Scheme() string

	// Enroll derives the vault key for a new passphrase and the fingerprint
	// to persist next to the vault. Returns an error only if a random salt
	// cannot be generated.
	Enroll(passphrase string) (key []byte, fp Fingerprint, err error)

	// Verify derives the vault key for passphrase and reports whether it
	// matches fp. A length mismatch between the derived proof and fp.Sum is
	// a mismatch, not an error.
	Verify(passphrase string, fp Fingerprint) (key []byte, ok bool)
}
