package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hazepito/internal/ui/theme"
)

// Tab is one selectable entry of a TabBar.
type Tab struct {
	ID    string
	Label string
}

// TabGroup is a labelled run of tabs. An empty label renders no heading.
type TabGroup struct {
	Label string
	Tabs  []Tab
}

// TabBar is the pill-style selector. It holds no state of its own: the
// caller passes the active id in and maps clicks back through At.
type TabBar struct {
	Groups []TabGroup
	Active string
	// Width bounds the rendered line; the bar scrolls so the active pill
	// stays visible. Zero means unbounded.
	Width int
}

// Tabs builds an ungrouped bar.
func Tabs(tabs []Tab, active string) TabBar {
	return TabBar{Groups: []TabGroup{{Tabs: tabs}}, Active: active}
}

const (
	scrollLeft  = "‹ "
	scrollRight = " ›"
)

type segment struct {
	id    string
	text  string
	width int
}

type placed struct {
	segment
	col int
}

func (b TabBar) segments() []segment {
	var out []segment
	for gi, g := range b.Groups {
		if gi > 0 {
			out = append(out, segment{text: "  ", width: 2})
		}
		if g.Label != "" {
			text := theme.GroupLabel.Render(g.Label + ":")
			out = append(out, segment{text: text, width: lipgloss.Width(text)}, segment{text: " ", width: 1})
		}
		for ti, t := range g.Tabs {
			if ti > 0 {
				out = append(out, segment{text: " ", width: 1})
			}
			style := theme.Pill
			if t.ID == b.Active {
				style = theme.PillActive
			}
			text := style.Render(t.Label)
			out = append(out, segment{id: t.ID, text: text, width: lipgloss.Width(text)})
		}
	}
	return out
}

func (b TabBar) layout() (vis []placed, left, right bool) {
	segs := b.segments()
	if b.Width <= 0 {
		col := 0
		for _, s := range segs {
			vis = append(vis, placed{segment: s, col: col})
			col += s.width
		}
		return vis, false, false
	}

	active := -1
	for i, s := range segs {
		if s.id != "" && s.id == b.Active {
			active = i
			break
		}
	}
	margin := lipgloss.Width(scrollLeft)
	start := 0
	for start < active {
		used := margin
		if start > 0 {
			used += margin
		}
		for i := start; i <= active; i++ {
			used += segs[i].width
		}
		if used <= b.Width {
			break
		}
		start++
	}

	col := 0
	if start > 0 {
		left = true
		col = margin
	}
	for i := start; i < len(segs); i++ {
		limit := b.Width
		if i < len(segs)-1 {
			limit -= margin
		}
		if col+segs[i].width > limit {
			right = true
			break
		}
		vis = append(vis, placed{segment: segs[i], col: col})
		col += segs[i].width
	}
	return vis, left, right
}

func (b TabBar) View() string {
	vis, left, right := b.layout()
	var sb strings.Builder
	if left {
		sb.WriteString(theme.Muted.Render(scrollLeft))
	}
	for _, p := range vis {
		sb.WriteString(p.text)
	}
	if right {
		sb.WriteString(theme.Muted.Render(scrollRight))
	}
	return sb.String()
}

// At returns the id of the tab drawn at column x of View's output.
func (b TabBar) At(x int) (string, bool) {
	vis, _, _ := b.layout()
	for _, p := range vis {
		if p.id != "" && x >= p.col && x < p.col+p.width {
			return p.id, true
		}
	}
	return "", false
}
