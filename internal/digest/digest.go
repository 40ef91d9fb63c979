// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package digest implements the one-way compression function used by the
// vault to derive the master key and the stored passphrase fingerprint.
//
// The output is bit-for-bit SHA-256 (FIPS 180-4). Existing vault files keep a
// fingerprint that was computed once and is never re-derived, so the engine
// must stay compatible with that construction forever.
//
// [Engine] follows the usual streaming lifecycle:
//
//	Reset  (init) loads the initial hash state.
//	Write  (update) consumes bytes, buffering partial 64-byte blocks.
//	Sum    (final) pads, appends the 64-bit big-endian bit length and emits 32 bytes.
package digest

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the digest length in bytes.
	Size = 32
	// BlockSize is the compression function block length in bytes.
	BlockSize = 64

	// lengthOffset is where the 64-bit message length starts inside the
	// final padded block.
	lengthOffset = BlockSize - 8
)

var initialState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var _ hash.Hash = (*Engine)(nil)

// Engine is a streaming digest state. The zero value is not ready for use;
// construct it with [New].
type Engine struct {
	state  [8]uint32
	block  [BlockSize]byte
	filled int
	length uint64
}

// New returns an initialised [Engine].
func New() *Engine {
	e := new(Engine)
	e.Reset()
	return e
}

// Sum256 returns the digest of data in one call.
func Sum256(data []byte) [Size]byte {
	e := New()
	_, _ = e.Write(data)
	return e.checkSum()
}

// Reset loads the initial hash state and drops any buffered input.
func (e *Engine) Reset() {
	e.state = initialState
	e.filled = 0
	e.length = 0
}

// Size implements [hash.Hash].
func (e *Engine) Size() int { return Size }

// BlockSize implements [hash.Hash].
func (e *Engine) BlockSize() int { return BlockSize }

// Write consumes p. Complete 64-byte blocks are compressed immediately, the
// remainder is kept until more input or Sum arrives. It never fails.
func (e *Engine) Write(p []byte) (int, error) {
	n := len(p)
	e.length += uint64(n)

	if e.filled > 0 {
		copied := copy(e.block[e.filled:], p)
		e.filled += copied
		p = p[copied:]
		if e.filled < BlockSize {
			return n, nil
		}
		compress(&e.state, e.block[:])
		e.filled = 0
	}

	for len(p) >= BlockSize {
		compress(&e.state, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		e.filled = copy(e.block[:], p)
	}

	return n, nil
}

// Sum appends the digest of everything written so far to in. The running
// state is left untouched, so writing may continue afterwards.
func (e *Engine) Sum(in []byte) []byte {
	clone := *e
	sum := clone.checkSum()
	return append(in, sum[:]...)
}

// checkSum finalises the receiver. It must be called on a copy when the
// caller wants to keep writing.
func (e *Engine) checkSum() [Size]byte {
	bitLength := e.length << 3

	var padding [BlockSize]byte
	padding[0] = 0x80

	// Pad with 0x80 followed by zeros until the buffered length is 56 mod 64.
	rest := int(e.length % BlockSize)
	if rest < lengthOffset {
		_, _ = e.Write(padding[:lengthOffset-rest])
	} else {
		_, _ = e.Write(padding[:BlockSize+lengthOffset-rest])
	}

	var lengthBytes [8]byte
	binary.BigEndian.PutUint64(lengthBytes[:], bitLength)
	_, _ = e.Write(lengthBytes[:])

	var out [Size]byte
	for i, word := range e.state {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
	return out
}
