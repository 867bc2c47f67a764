// Package styles holds the lipgloss palette of the overlay.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Accent = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	Subtle = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	Ok     = lipgloss.Color("#22C55E")
	Bad    = lipgloss.Color("#F43F5E")
	Match  = lipgloss.Color("#FACC15")
	Ink    = lipgloss.Color("#111827")
)

var (
	App = lipgloss.NewStyle().Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	Hint = lipgloss.NewStyle().Foreground(Subtle)

	Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 2)

	FieldLabel = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// InputBox frames the focused text input or text area
	InputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	// Result rows: date column, then the preview
	RowDate = lipgloss.NewStyle().
		Foreground(Subtle).
		Width(13)

	RowSelected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Ink).
			Bold(true)

	RowNormal = lipgloss.NewStyle()

	SearchMatch = lipgloss.NewStyle().
			Background(Match).
			Foreground(Ink)

	KeyName = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	KeyDesc = lipgloss.NewStyle().Foreground(Subtle)

	KeySeparator = lipgloss.NewStyle().
			Foreground(Subtle).
			SetString(" · ")

	StatusOK = lipgloss.NewStyle().
			Foreground(Ok).
			Bold(true)

	StatusErr = lipgloss.NewStyle().
			Foreground(Bad).
			Bold(true)
)
