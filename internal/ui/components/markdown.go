package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders record bodies with glamour. The zero value and any
// renderer failure fall back to the raw text.
type Markdown struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func NewMarkdown(style string) Markdown {
	if style == "" {
		style = "dark"
	}
	m := Markdown{style: style}
	m.rebuild()
	return m
}

// SetWidth rebuilds the renderer so it word-wraps at w columns.
func (m *Markdown) SetWidth(w int) {
	if w == m.width && m.renderer != nil {
		return
	}
	m.width = w
	m.rebuild()
}

func (m *Markdown) rebuild() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.style),
		glamour.WithWordWrap(max(m.width, 0)),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = r
}

func (m Markdown) Render(body string) string {
	if m.renderer == nil {
		return body
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}
