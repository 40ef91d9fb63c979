// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is one stored credential record. Entries are keyed by Service, but
// nothing enforces uniqueness: several entries may share a service name.
type Entry struct {
	Service  string
	Username string
	Secret   string
}
