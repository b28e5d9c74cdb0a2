// Package themes holds the color schemes for the interactive menu.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the menu.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Prompt      lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusOK    lipgloss.Style
	Box         lipgloss.Style
	Primary     lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
	Info        lipgloss.Color
	Border      lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#5FAFD7"),
	Error:   lipgloss.Color("#FF6B6B"),
	Success: lipgloss.Color("#4ECDC4"),
	Info:    lipgloss.Color("#95E1D3"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5FAFD7")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5FAFD7")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Prompt: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5FAFD7")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#95E1D3")),
	StatusOK: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4")),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
}

// Plain renders without colors, for tests and dumb terminals.
var Plain = Theme{
	Title:       lipgloss.NewStyle(),
	Subtitle:    lipgloss.NewStyle(),
	Normal:      lipgloss.NewStyle(),
	Selected:    lipgloss.NewStyle(),
	Muted:       lipgloss.NewStyle(),
	Prompt:      lipgloss.NewStyle(),
	StatusError: lipgloss.NewStyle(),
	StatusInfo:  lipgloss.NewStyle(),
	StatusOK:    lipgloss.NewStyle(),
	Box:         lipgloss.NewStyle(),
}
