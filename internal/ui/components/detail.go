package components

import (
	"github.com/charmbracelet/lipgloss"

	"hazepito/internal/ui/theme"
)

// DetailPanel is the callout shown for a selected hotspot: an accent
// coloured left border, the title as heading and the rendered body.
type DetailPanel struct {
	Title  string
	Accent string
	Body   string
	Width  int
}

// View renders the callout; md should already wrap at Width.
func (p DetailPanel) View(md Markdown) string {
	accent := theme.Accent(p.Accent)
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(accent).
		PaddingLeft(1)
	if p.Width > 0 {
		box = box.Width(p.Width - 1)
	}
	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(p.Title)
	return box.Render(heading + "\n" + md.Render(p.Body))
}
