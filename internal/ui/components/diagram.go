package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hazepito/internal/modules/catalog/dto"
	"hazepito/internal/ui/theme"
)

// Offsets of the canvas inside DiagramFrame: border plus padding on the
// left, border plus the title row on top.
const (
	FrameInsetX = 2
	FrameInsetY = 2
)

var (
	artStyle     = lipgloss.NewStyle().Foreground(theme.Surface1)
	shapeStyle   = lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Surface0)
	focusedStyle = shapeStyle.Background(theme.Surface1).Underline(true)
)

// Diagram paints a topic diagram: the background art first, then every
// shape as a filled labelled region. Later shapes cover earlier ones.
type Diagram struct {
	Diagram  dto.DiagramOutput
	Selected string
	// Focused is the keyboard cursor; it only changes the shape's shade.
	Focused string
	// Accents colours the selected shape, keyed by hotspot id.
	Accents map[string]string
}

func (d Diagram) View() string {
	w, h := d.Diagram.Width, d.Diagram.Height
	if w <= 0 || h <= 0 {
		return ""
	}
	cells := make([][]rune, h)
	owner := make([][]int, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", w))
		owner[y] = make([]int, w)
		for x := range owner[y] {
			owner[y][x] = -1
		}
		if y < len(d.Diagram.Art) {
			for x, r := range []rune(d.Diagram.Art[y]) {
				if x >= w {
					break
				}
				cells[y][x] = r
			}
		}
	}

	for i, sh := range d.Diagram.Shapes {
		for y := max(sh.Y, 0); y < min(sh.Y+sh.H, h); y++ {
			for x := max(sh.X, 0); x < min(sh.X+sh.W, w); x++ {
				cells[y][x] = ' '
				owner[y][x] = i
			}
		}
		label := []rune(sh.Label)
		if len(label) > sh.W {
			label = label[:max(sh.W, 0)]
		}
		ly := sh.Y + (sh.H-1)/2
		lx := sh.X + (sh.W-len(label))/2
		if ly < 0 || ly >= h {
			continue
		}
		for j, r := range label {
			if x := lx + j; x >= 0 && x < w && owner[ly][x] == i {
				cells[ly][x] = r
			}
		}
	}

	lines := make([]string, h)
	for y := range cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= w; x++ {
			if x < w && owner[y][x] == owner[y][start] {
				continue
			}
			sb.WriteString(d.styleFor(owner[y][start]).Render(string(cells[y][start:x])))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (d Diagram) styleFor(idx int) lipgloss.Style {
	if idx < 0 {
		return artStyle
	}
	id := d.Diagram.Shapes[idx].Hotspot
	switch {
	case id != "" && id == d.Selected:
		return lipgloss.NewStyle().
			Foreground(theme.Base).
			Background(theme.Accent(d.Accents[id])).
			Bold(true)
	case id != "" && id == d.Focused:
		return focusedStyle
	default:
		return shapeStyle
	}
}

// HitTest returns the hotspot of the topmost shape covering canvas cell
// (x, y).
func HitTest(diagram dto.DiagramOutput, x, y int) (string, bool) {
	for i := len(diagram.Shapes) - 1; i >= 0; i-- {
		sh := diagram.Shapes[i]
		if x >= sh.X && x < sh.X+sh.W && y >= sh.Y && y < sh.Y+sh.H {
			return sh.Hotspot, sh.Hotspot != ""
		}
	}
	return "", false
}

// DiagramFrame wraps a canvas in the bordered diagram container with a
// title row.
func DiagramFrame(title, body string, active bool) string {
	style := theme.Frame
	if active {
		style = style.BorderForeground(theme.Lavender)
	}
	return style.Render(theme.Title.Render(title) + "\n" + body)
}
