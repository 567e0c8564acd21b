package topic

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "hazepito/internal/modules/catalog/dto"
	referencedto "hazepito/internal/modules/reference/dto"
	viewer "hazepito/internal/modules/viewer/domain"
	"hazepito/internal/ui/components"
	"hazepito/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the reference use-case.
type Port interface {
	Probe(ctx context.Context, url string) (referencedto.ProbeOutput, error)
	SearchLink(ctx context.Context, query string) (referencedto.SearchLinkOutput, error)
	OpenSearch(ctx context.Context, query string) (referencedto.SearchLinkOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// ProbedMsg reports the load outcome of one reference photo.
type ProbedMsg struct {
	Mount  uint64
	Topic  string
	Index  int
	Loaded bool
}

// SearchLinkMsg carries the image-search URL built for the topic.
type SearchLinkMsg struct {
	Mount uint64
	URL   string
}

// SearchOpenedMsg is sent after the search link was handed to the OS opener.
type SearchOpenedMsg struct {
	Topic string
	URL   string
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

// headerRows is the topic heading, the sub-tab bar and one blank line.
const headerRows = 3

var mounts atomic.Uint64

// Model is one mounted topic panel: a hotspot viewer over the topic's
// sub-tabs plus its photo section.
type Model struct {
	port    Port
	topic   catalogdto.TopicOutput
	subTabs map[string]catalogdto.SubTabOutput
	viewer  viewer.Viewer[catalogdto.RecordOutput]
	photos  viewer.PhotoSection
	mount   uint64
	keys    keyMap

	focus     int
	probing   bool
	searchURL string

	md       components.Markdown
	spinner  spinner.Model
	viewport viewport.Model
	// body rows of the diagram frame and of the photo toggle line
	diagramRow int
	photoRow   int

	width  int
	height int
}

// New mounts a fresh panel on the topic's default sub-tab with nothing
// selected.
func New(port Port, topic catalogdto.TopicOutput, glamourStyle string) Model {
	subTabs := make(map[string]catalogdto.SubTabOutput, len(topic.SubTabs))
	ids := make([]string, 0, len(topic.SubTabs))
	for _, st := range topic.SubTabs {
		subTabs[st.ID] = st
		ids = append(ids, st.ID)
	}
	lookup := func(id string) map[string]catalogdto.RecordOutput {
		return subTabs[id].Records
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := Model{
		port:     port,
		topic:    topic,
		subTabs:  subTabs,
		viewer:   viewer.NewViewer(ids, topic.DefaultSubTab, lookup),
		photos:   viewer.NewPhotoSection(len(topic.Photos)),
		mount:    mounts.Add(1),
		keys:     defaultKeys(),
		focus:    -1,
		md:       components.NewMarkdown(glamourStyle),
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init resolves the image-search link for the topic.
func (m Model) Init() tea.Cmd {
	if m.port == nil || strings.TrimSpace(m.topic.SearchQuery) == "" {
		return nil
	}
	port, query, mount := m.port, m.topic.SearchQuery, m.mount
	return func() tea.Msg {
		out, err := port.SearchLink(context.Background(), query)
		if err != nil {
			return nil
		}
		return SearchLinkMsg{Mount: mount, URL: out.URL}
	}
}

func (m Model) TopicID() string { return m.topic.ID }
func (m Model) SubTab() string  { return m.viewer.SubTab() }
func (m Model) Hotspot() string { return m.viewer.Hotspot() }

// Detail is the record currently shown in the detail panel, if any.
func (m Model) Detail() (catalogdto.RecordOutput, bool) { return m.viewer.Detail() }

func (m Model) PhotosExpanded() bool { return m.photos.Expanded() }
func (m Model) SearchURL() string    { return m.searchURL }

// SelectSubTab switches sub-tab and reports whether id is declared.
func (m *Model) SelectSubTab(id string) bool {
	if _, ok := m.subTabs[id]; !ok {
		return false
	}
	m.viewer.SelectSubTab(id)
	m.focus = -1
	m.refresh()
	return true
}

// SelectHotspot toggles id on the active sub-tab.
func (m *Model) SelectHotspot(id string) {
	m.viewer.SelectHotspot(id)
	if i := m.shapeIndex(id); i >= 0 {
		m.focus = i
	}
	m.refresh()
}

// TogglePhotos expands or collapses the photo section. The first expansion
// starts one probe per photo.
func (m *Model) TogglePhotos() tea.Cmd {
	expanded := m.photos.Toggle()
	m.refresh()
	if !expanded || m.probing || m.port == nil {
		return nil
	}
	pending := m.photos.Pending()
	if len(pending) == 0 {
		return nil
	}
	m.probing = true
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, i := range pending {
		cmds = append(cmds, m.probeCmd(i))
	}
	return tea.Batch(cmds...)
}

// OpenSearch hands the topic's image-search link to the OS opener.
func (m Model) OpenSearch() tea.Cmd {
	if m.port == nil || strings.TrimSpace(m.topic.SearchQuery) == "" {
		return nil
	}
	port, topicID, query := m.port, m.topic.ID, m.topic.SearchQuery
	return func() tea.Msg {
		out, err := port.OpenSearch(context.Background(), query)
		return SearchOpenedMsg{Topic: topicID, URL: out.URL, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.md.SetWidth(max(m.width-4, 20))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ProbedMsg:
		if msg.Mount != m.mount || msg.Topic != m.topic.ID {
			return m, nil
		}
		if msg.Loaded {
			m.photos.MarkLoaded(msg.Index)
		} else {
			m.photos.MarkFailed(msg.Index)
		}
		if len(m.photos.Pending()) == 0 {
			m.probing = false
		}
		m.refresh()
		return m, nil

	case SearchLinkMsg:
		if msg.Mount != m.mount {
			return m, nil
		}
		m.searchURL = msg.URL
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.probing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	header := theme.Title.Render(m.topic.Label)
	if m.topic.Subtitle != "" {
		header += "  " + theme.Muted.Render(m.topic.Subtitle)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.tabBar().View(), "", m.viewport.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextSubTab):
		m.viewer.NextSubTab()
		m.focus = -1
	case key.Matches(msg, m.keys.PrevSubTab):
		m.viewer.PrevSubTab()
		m.focus = -1
	case key.Matches(msg, m.keys.NextShape):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevShape):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Select):
		if shapes := m.shapes(); m.focus >= 0 && m.focus < len(shapes) {
			m.viewer.SelectHotspot(shapes[m.focus].Hotspot)
		}
	case key.Matches(msg, m.keys.Ordinal):
		idx := int(msg.String()[0] - '1')
		if shapes := m.shapes(); idx < len(shapes) {
			m.focus = idx
			m.viewer.SelectHotspot(shapes[idx].Hotspot)
		}
	case key.Matches(msg, m.keys.Clear):
		m.viewer.SelectHotspot(viewer.None)
	case key.Matches(msg, m.keys.Photos):
		cmd := m.TogglePhotos()
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		return m, m.OpenSearch()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

// handleMouse expects coordinates relative to the panel's top-left corner.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	switch {
	case msg.Y == 1:
		if id, ok := m.tabBar().At(msg.X); ok {
			m.SelectSubTab(id)
		}
		return m, nil
	case msg.Y < headerRows:
		return m, nil
	}

	row := msg.Y - headerRows + m.viewport.YOffset
	if m.photoRow >= 0 && row == m.photoRow {
		return m, m.TogglePhotos()
	}
	st, ok := m.subTabs[m.viewer.SubTab()]
	if !ok {
		return m, nil
	}
	x := msg.X - components.FrameInsetX
	y := row - m.diagramRow - components.FrameInsetY
	if id, hit := components.HitTest(st.Diagram, x, y); hit {
		m.SelectHotspot(id)
	}
	return m, nil
}

func (m Model) tabBar() components.TabBar {
	tabs := make([]components.Tab, 0, len(m.topic.SubTabs))
	for _, st := range m.topic.SubTabs {
		tabs = append(tabs, components.Tab{ID: st.ID, Label: st.Label})
	}
	bar := components.Tabs(tabs, m.viewer.SubTab())
	bar.Width = m.width
	return bar
}

func (m Model) shapes() []catalogdto.ShapeOutput {
	return m.subTabs[m.viewer.SubTab()].Diagram.Shapes
}

func (m Model) shapeIndex(id string) int {
	for i, sh := range m.shapes() {
		if sh.Hotspot == id {
			return i
		}
	}
	return -1
}

func (m *Model) moveFocus(delta int) {
	n := len(m.shapes())
	if n == 0 {
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = n - 1
		}
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m Model) probeCmd(i int) tea.Cmd {
	port, url := m.port, m.topic.Photos[i].URL
	mount, topicID := m.mount, m.topic.ID
	return func() tea.Msg {
		out, err := port.Probe(context.Background(), url)
		return ProbedMsg{Mount: mount, Topic: topicID, Index: i, Loaded: err == nil && out.Loaded}
	}
}

// refresh re-renders the scrollable body after any state change.
func (m *Model) refresh() {
	st := m.subTabs[m.viewer.SubTab()]

	var parts []string
	row := 0
	add := func(s string) {
		parts = append(parts, s)
		row += lipgloss.Height(s)
	}

	if m.topic.Intro != "" {
		add(m.md.Render(m.topic.Intro))
		add("")
	}

	focused := ""
	if shapes := m.shapes(); m.focus >= 0 && m.focus < len(shapes) {
		focused = shapes[m.focus].Hotspot
	}
	accents := make(map[string]string, len(st.Records))
	for id, rec := range st.Records {
		accents[id] = rec.Accent
	}
	canvas := components.Diagram{
		Diagram:  st.Diagram,
		Selected: m.viewer.Hotspot(),
		Focused:  focused,
		Accents:  accents,
	}.View()
	m.diagramRow = row
	add(components.DiagramFrame(st.Label, canvas, m.viewer.Hotspot() != viewer.None))

	if rec, ok := m.viewer.Detail(); ok {
		add("")
		add(components.DetailPanel{Title: rec.Title, Accent: rec.Accent, Body: rec.Body, Width: m.width}.View(m.md))
	}

	m.photoRow = -1
	if len(m.topic.Photos) > 0 || m.searchURL != "" {
		add("")
		m.photoRow = row
		add(components.PhotoPanel{
			Photos:    m.topic.Photos,
			Section:   m.photos,
			SearchURL: m.searchURL,
			Spinner:   m.spinner.View(),
			Width:     m.width,
		}.View())
	}

	add("")
	add(components.FooterHint(m.hint()))

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerRows, 1)
	m.viewport.SetContent(strings.Join(parts, "\n"))
}

func (m Model) hint() string {
	if m.viewer.Hotspot() == viewer.None {
		return "Kattints a rajz egy elemére, vagy válassz 1–9 gombbal."
	}
	return "Kattints újra az elemre, vagy nyomj esc-et a bezáráshoz."
}
