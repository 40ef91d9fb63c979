// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks console input before it reaches the vault
// session.
//
// The session accepts any strings, but the record format cannot carry every
// string: a line break splits a record, and a colon in a secret moves the
// field boundary on the next load. Validators reject such input at the edge
// so what the user typed is what comes back.
//
// Usage:
//  1. Construct a Validator and inject it into the console.
//  2. Call Validate with a value and, optionally, the field names to check.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
