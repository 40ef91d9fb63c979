// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps arbitrary bytes to a printable 64-symbol alphabet and
// back, so key material and cipher output can live in plain-text files.
//
// Encode produces standard padded base64. Decode is deliberately lenient: it
// reads left to right, stops at the first character outside the alphabet
// (the '=' padding included) and silently drops an incomplete trailing
// group. Callers must not rely on Decode to detect corruption.
package codec

import "encoding/base64"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// invalid marks bytes outside the alphabet in decodeMap.
const invalid = 0xFF

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// Encode maps every 3 input bytes to 4 alphabet characters and pads the last
// group with '=' to a multiple of 4.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses [Encode]. It never fails: decoding stops at the first
// character outside the alphabet and any bits that do not complete a byte are
// discarded.
func Decode(text string) []byte {
	out := make([]byte, 0, len(text)*3/4)

	var acc uint32
	pending := 0 // number of buffered bits not yet emitted
	for i := 0; i < len(text); i++ {
		v := decodeMap[text[i]]
		if v == invalid {
			break
		}
		acc = (acc<<6 | uint32(v)) & 0xFFFFFF
		pending += 6
		if pending >= 8 {
			pending -= 8
			out = append(out, byte(acc>>pending))
		}
	}

	return out
}
