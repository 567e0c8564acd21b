package components

import (
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hazepito/internal/modules/catalog/dto"
	viewer "hazepito/internal/modules/viewer/domain"
	"hazepito/internal/ui/theme"
)

const photoCardWidth = 30

var photoCard = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Surface1).
	Padding(0, 1).
	Width(photoCardWidth - 2)

// PhotoPanel renders the collapsible photo section of a topic. Failed photos
// are simply left out; the section itself never shows an error.
type PhotoPanel struct {
	Photos    []dto.PhotoOutput
	Section   viewer.PhotoSection
	SearchURL string
	// Spinner is drawn next to photos whose probe is still running.
	Spinner string
	Width   int
}

func (p PhotoPanel) Toggle() string {
	arrow := "▸"
	if p.Section.Expanded() {
		arrow = "▾"
	}
	return theme.Hot.Render(arrow+" Fotópéldák") + theme.Muted.Render(" ("+strconv.Itoa(len(p.Photos))+")")
}

func (p PhotoPanel) View() string {
	if len(p.Photos) == 0 && p.SearchURL == "" {
		return ""
	}
	if !p.Section.Expanded() {
		return p.Toggle()
	}

	var cards []string
	for _, i := range p.Section.Visible() {
		if i >= len(p.Photos) {
			continue
		}
		cards = append(cards, p.card(i))
	}

	var sb strings.Builder
	sb.WriteString(p.Toggle())
	if len(cards) > 0 {
		perRow := 1
		if p.Width > photoCardWidth {
			perRow = p.Width / photoCardWidth
		}
		for start := 0; start < len(cards); start += perRow {
			end := min(start+perRow, len(cards))
			sb.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
		}
	}
	if p.SearchURL != "" {
		sb.WriteString("\n" + theme.Muted.Render("↗ Képkeresés: ") + p.SearchURL)
	}
	return sb.String()
}

func (p PhotoPanel) card(i int) string {
	photo := p.Photos[i]
	glyph := lipgloss.NewStyle().Foreground(theme.Green).Render("●")
	if p.Section.Status(i) == viewer.PhotoPending {
		glyph = p.Spinner
		if glyph == "" {
			glyph = "…"
		}
	}
	caption := photo.Caption
	if caption == "" {
		caption = "Fotó " + strconv.Itoa(i+1)
	}
	return photoCard.Render(glyph + " " + caption + "\n" + theme.Muted.Render(shorten(path.Base(photo.URL), photoCardWidth-4)))
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
