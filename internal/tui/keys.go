package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	quit  key.Binding
}

// A bare line feed arrives as ctrl+j, so it submits like enter does.
var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter", "ctrl+j")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}
