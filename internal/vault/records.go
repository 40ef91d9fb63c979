// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldSeparator  = ":"
	recordSeparator = "\n"
)

// MarshalEntries serializes entries as service:username:secret lines, each
// terminated by a line break, in slice order.
func MarshalEntries(entries []models.Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Service)
		b.WriteString(fieldSeparator)
		b.WriteString(e.Username)
		b.WriteString(fieldSeparator)
		b.WriteString(e.Secret)
		b.WriteString(recordSeparator)
	}
	return []byte(b.String())
}

// UnmarshalEntries parses the output of [MarshalEntries].
//
// The first colon of a line ends the service and the last colon starts the
// secret; everything between is the username. So "svc:a:b:c" yields username
// "a:b" and secret "c", and a secret containing a colon does not survive a
// round trip. Lines without two distinct colons are skipped silently.
func UnmarshalEntries(data []byte) []models.Entry {
	var entries []models.Entry
	for _, line := range strings.Split(string(data), recordSeparator) {
		first := strings.Index(line, fieldSeparator)
		last := strings.LastIndex(line, fieldSeparator)
		if first < 0 || last <= first {
			continue
		}

		entries = append(entries, models.Entry{
			Service:  line[:first],
			Username: line[first+1 : last],
			Secret:   line[last+1:],
		})
	}
	return entries
}
