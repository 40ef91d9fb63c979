package tui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 4).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Bold(true)
)
