package theme

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Pill and PillActive are the tab selector buttons.
	Pill = lipgloss.NewStyle().
		Foreground(Subtext0).
		Background(Surface0).
		Padding(0, 1)

	PillActive = Pill.
			Foreground(Base).
			Background(Lavender).
			Bold(true)

	GroupLabel = lipgloss.NewStyle().Foreground(Overlay0).Italic(true)

	Frame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().Foreground(Overlay0).Italic(true)
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Accent maps a record accent to a terminal color. Anything that is not a
// hex triplet falls back to Peach.
func Accent(hex string) lipgloss.Color {
	if !hexColor.MatchString(hex) {
		return Peach
	}
	return lipgloss.Color(hex)
}
