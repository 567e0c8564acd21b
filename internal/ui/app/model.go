package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "hazepito/internal/modules/catalog/dto"
	referencedto "hazepito/internal/modules/reference/dto"
	viewer "hazepito/internal/modules/viewer/domain"
	"hazepito/internal/ui/components"
	"hazepito/internal/ui/theme"
	topicview "hazepito/internal/ui/views/topic"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// The topic view declares its own, narrower port.

type catalogPort interface {
	Taxonomy(ctx context.Context) (catalogdto.TaxonomyOutput, error)
	Topic(ctx context.Context, id string) (catalogdto.TopicOutput, error)
}

type referencePort interface {
	Probe(ctx context.Context, url string) (referencedto.ProbeOutput, error)
	SearchLink(ctx context.Context, query string) (referencedto.SearchLinkOutput, error)
	OpenSearch(ctx context.Context, query string) (referencedto.SearchLinkOutput, error)
}

// Options carries the user-facing knobs from config.
type Options struct {
	// DefaultTopic overrides the content pack's default when it is declared.
	DefaultTopic string
	GlamourStyle string
}

// ─── async messages ───────────────────────────────────────────────────────────

type taxonomyLoadedMsg struct {
	taxonomy catalogdto.TaxonomyOutput
	err      error
}

type panelMountedMsg struct {
	id    string
	panel topicview.Model
	err   error
}

// panelFactory builds a fresh panel for one topic id.
type panelFactory func(ctx context.Context) (topicview.Model, error)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NextTopic key.Binding
	PrevTopic key.Binding
	Help      key.Binding
	Palette   key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTopic: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "következő téma")),
		PrevTopic: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "előző téma")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "súgó")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "parancsok")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "kilépés")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTopic, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	panel := topicview.Bindings()
	half := (len(panel) + 1) / 2
	return [][]key.Binding{
		{k.NextTopic, k.PrevTopic, k.Help, k.Palette, k.Quit},
		panel[:half],
		panel[half:],
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

const brand = "hazepito  "

// panelTop is the topic bar plus one blank row.
const panelTop = 2

// Model is the root Bubble Tea model. It owns the active topic, the grouped
// topic bar, the help overlay and the command palette. Exactly one topic
// panel is mounted at a time.
type Model struct {
	catalog   catalogPort
	reference referencePort
	opts      Options

	shell     viewer.Shell
	groups    []catalogdto.GroupOutput
	factories map[string]panelFactory

	panel    topicview.Model
	hasPanel bool
	loading  bool

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	failed   bool
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(catalog catalogPort, reference referencePort, opts Options) Model {
	return Model{
		catalog:   catalog,
		reference: reference,
		opts:      opts,
		factories: map[string]panelFactory{},
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "betöltés…",
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadTaxonomyCmd()
}

// ActiveTopic is the shell's current topic id.
func (m Model) ActiveTopic() string { return m.shell.Active() }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.palette.Visible() {
		return m.route(msg)
	}
	// The palette owns keyboard and mouse input while open; async results
	// still reach the shell and the mounted panel.
	var paletteCmd tea.Cmd
	m.palette, paletteCmd = m.palette.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return m, paletteCmd
	}
	next, cmd := m.route(msg)
	return next, tea.Batch(paletteCmd, cmd)
}

func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case taxonomyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("tartalom: " + msg.err.Error())
			return m, nil
		}
		m.applyTaxonomy(msg.taxonomy)
		m.setStatus(fmt.Sprintf("%d téma", len(m.shell.IDs())))
		return m, m.mount(m.shell.Active())

	case panelMountedMsg:
		// a slower mount for a topic the user already left
		if msg.id != m.shell.Active() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.hasPanel = false
			m.fail(msg.id + ": " + msg.err.Error())
			return m, nil
		}
		m.panel = msg.panel
		m.hasPanel = true
		m.panel, _ = m.panel.Update(m.panelSize())
		return m, m.panel.Init()

	case topicview.SearchOpenedMsg:
		if msg.Err != nil {
			m.fail("képkeresés: " + msg.Err.Error())
		} else {
			m.setStatus("megnyitva: " + msg.URL)
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.setStatus("kész")
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.NextTopic):
			return m, m.step(1)
		case key.Matches(msg, m.keys.PrevTopic):
			return m, m.step(-1)
		}

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		if msg.Y == 0 {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				if id, ok := m.topicBar().At(msg.X - lipgloss.Width(brand)); ok {
					return m, m.selectTopic(id)
				}
			}
			return m, nil
		}
		if msg.Y < panelTop {
			return m, nil
		}
		msg.Y -= panelTop
		return m.delegate(msg)
	}

	return m.delegate(msg)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	topBar := m.renderTopicBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - panelTop - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(theme.Pane.Render(m.help.View(m.keys)))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.hasPanel:
		content = lipgloss.NewStyle().Height(contentH).MaxHeight(contentH).Render(m.panel.View())
	default:
		content = lipgloss.NewStyle().Height(contentH).Render("")
	}

	return lipgloss.JoinVertical(lipgloss.Left, topBar, "", content, statusBar)
}

func (m Model) topicBar() components.TabBar {
	groups := make([]components.TabGroup, 0, len(m.groups))
	for _, g := range m.groups {
		tabs := make([]components.Tab, 0, len(g.Topics))
		for _, t := range g.Topics {
			tabs = append(tabs, components.Tab{ID: t.ID, Label: t.Label})
		}
		groups = append(groups, components.TabGroup{Label: g.Label, Tabs: tabs})
	}
	return components.TabBar{
		Groups: groups,
		Active: m.shell.Active(),
		Width:  max(m.width-lipgloss.Width(brand), 0),
	}
}

func (m Model) renderTopicBar() string {
	bar := theme.Title.Render(strings.TrimSpace(brand)) + "  " + m.topicBar().View()
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).MaxHeight(1).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.failed {
		left = theme.Error.Render(m.status)
	}
	if m.loading {
		left = theme.Muted.Render("betöltés…")
	}
	if m.hasPanel {
		left = theme.Hot.Render("● "+m.panel.TopicID()) + "  " + left
	}
	right := theme.Muted.Render("?:súgó  tab:téma  :::parancsok  q:kilépés")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch parts[0] {
	case "topic":
		if arg == "" {
			m.fail("használat: topic <id>")
			return m, nil
		}
		if !m.shell.Has(arg) {
			m.fail("ismeretlen téma: " + arg)
			return m, nil
		}
		return m, m.selectTopic(arg)

	case "subtab":
		if !m.hasPanel || arg == "" {
			m.fail("használat: subtab <id>")
			return m, nil
		}
		if !m.panel.SelectSubTab(arg) {
			m.fail("ismeretlen nézet: " + arg)
		}
		return m, nil

	case "hotspot":
		if !m.hasPanel || arg == "" {
			m.fail("használat: hotspot <id>")
			return m, nil
		}
		m.panel.SelectHotspot(arg)
		return m, nil

	case "photos":
		if !m.hasPanel {
			return m, nil
		}
		return m, m.panel.TogglePhotos()

	case "search":
		if !m.hasPanel {
			return m, nil
		}
		return m, m.panel.OpenSearch()

	case "help":
		m.showHelp = true
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		m.fail("ismeretlen parancs: " + parts[0])
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) setStatus(text string) { m.status, m.failed = text, false }

func (m *Model) fail(text string) { m.status, m.failed = text, true }

func (m *Model) applyTaxonomy(tax catalogdto.TaxonomyOutput) {
	m.groups = tax.Groups
	var ids []string
	for _, g := range tax.Groups {
		for _, t := range g.Topics {
			ids = append(ids, t.ID)
			m.factories[t.ID] = m.factoryFor(t.ID)
		}
	}
	def := tax.DefaultTopic
	if m.opts.DefaultTopic != "" && slices.Contains(ids, m.opts.DefaultTopic) {
		def = m.opts.DefaultTopic
	}
	m.shell = viewer.NewShell(ids, def)
}

func (m Model) factoryFor(id string) panelFactory {
	catalog, reference, style := m.catalog, m.reference, m.opts.GlamourStyle
	return func(ctx context.Context) (topicview.Model, error) {
		topic, err := catalog.Topic(ctx, id)
		if err != nil {
			return topicview.Model{}, err
		}
		var port topicview.Port
		if reference != nil {
			port = referencePortBridge{p: reference}
		}
		return topicview.New(port, topic, style), nil
	}
}

// selectTopic activates id and mounts a fresh panel for it. Reselecting the
// active topic keeps the mounted panel.
func (m *Model) selectTopic(id string) tea.Cmd {
	if id == m.shell.Active() && m.hasPanel {
		return nil
	}
	if !m.shell.Select(id) {
		return nil
	}
	return m.mount(id)
}

func (m *Model) step(delta int) tea.Cmd {
	if len(m.shell.IDs()) == 0 {
		return nil
	}
	if delta > 0 {
		m.shell.Next()
	} else {
		m.shell.Prev()
	}
	return m.mount(m.shell.Active())
}

// mount unmounts the current panel and builds the one mapped to id. An id
// with no factory leaves the content area empty.
func (m *Model) mount(id string) tea.Cmd {
	m.hasPanel = false
	m.panel = topicview.Model{}
	factory, ok := m.factories[id]
	if !ok {
		return nil
	}
	m.loading = true
	return func() tea.Msg {
		panel, err := factory(context.Background())
		return panelMountedMsg{id: id, panel: panel, err: err}
	}
}

func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.hasPanel {
		return m, nil
	}
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m Model) panelSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(m.height-panelTop-2, 1)}
}

func (m *Model) propagateSize() {
	if m.hasPanel {
		m.panel, _ = m.panel.Update(m.panelSize())
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadTaxonomyCmd() tea.Cmd {
	return func() tea.Msg {
		if m.catalog == nil {
			return taxonomyLoadedMsg{err: fmt.Errorf("catalog adapter not configured")}
		}
		tax, err := m.catalog.Taxonomy(context.Background())
		return taxonomyLoadedMsg{taxonomy: tax, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type referencePortBridge struct{ p referencePort }

func (b referencePortBridge) Probe(ctx context.Context, url string) (referencedto.ProbeOutput, error) {
	return b.p.Probe(ctx, url)
}
func (b referencePortBridge) SearchLink(ctx context.Context, query string) (referencedto.SearchLinkOutput, error) {
	return b.p.SearchLink(ctx, query)
}
func (b referencePortBridge) OpenSearch(ctx context.Context, query string) (referencedto.SearchLinkOutput, error) {
	return b.p.OpenSearch(ctx, query)
}
