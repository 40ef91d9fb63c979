// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// xorCipher is the private implementation of [StreamCipher].
type xorCipher struct{}

// NewXORCipher returns the repeating-key XOR [StreamCipher] used by the vault
// file format: out[i] = data[i] ^ key[i mod len(key)].
//
// Data shorter than the key uses only a key prefix; longer data cycles the key.
// Any bit flipped in the ciphertext flips the same bit of the plaintext and
// nothing detects it.
func NewXORCipher() StreamCipher {
	return xorCipher{}
}

// Crypt implements [StreamCipher]. An empty key returns an unmodified copy.
func (xorCipher) Crypt(data, key []byte) []byte {
	out := make([]byte, len(data))
	if len(key) == 0 {
		copy(out, data)
		return out
	}
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}
