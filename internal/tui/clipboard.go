package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by the OS clipboard. It
// fails with [ErrClipboardUnsupported] when no clipboard utility is
// available, for example on a headless Linux box without xclip or xsel.
func NewSystemClipboard() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return systemClipboard{}, nil
}

// WriteAll implements [Clipboard].
func (systemClipboard) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
