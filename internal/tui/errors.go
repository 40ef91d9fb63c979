// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by a [Prompter] when the user presses Ctrl+C
	// or Esc instead of submitting the line.
	ErrUserQuit = errors.New("user quit")

	// ErrClipboardUnsupported is returned by [NewSystemClipboard] when no
	// clipboard utility is available, e.g. on a headless Linux box.
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
