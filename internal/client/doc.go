// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault application runtime.
//
// It wires file storage, key derivation, the vault session and the console
// into a single process lifecycle: authenticate, run commands, persist.
package client
