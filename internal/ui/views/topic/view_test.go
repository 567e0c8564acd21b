package topic

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "hazepito/internal/modules/catalog/dto"
	referencedto "hazepito/internal/modules/reference/dto"
	"hazepito/internal/ui/components"
)

type fakePort struct {
	broken map[string]bool
	opened []string
}

func (f *fakePort) Probe(_ context.Context, url string) (referencedto.ProbeOutput, error) {
	if f.broken[url] {
		return referencedto.ProbeOutput{URL: url, Reason: "404"}, nil
	}
	return referencedto.ProbeOutput{URL: url, Loaded: true}, nil
}

func (f *fakePort) SearchLink(_ context.Context, query string) (referencedto.SearchLinkOutput, error) {
	return referencedto.SearchLinkOutput{Query: query, URL: "https://search.test/search?q=" + query + "&mode=images"}, nil
}

func (f *fakePort) OpenSearch(ctx context.Context, query string) (referencedto.SearchLinkOutput, error) {
	out, _ := f.SearchLink(ctx, query)
	f.opened = append(f.opened, out.URL)
	return out, nil
}

func foundation() catalogdto.TopicOutput {
	return catalogdto.TopicOutput{
		ID:            "foundation",
		Label:         "Alapozás",
		Subtitle:      "Sávalap és talaj",
		DefaultSubTab: "layers",
		SearchQuery:   "savalap",
		SubTabs: []catalogdto.SubTabOutput{
			{
				ID:    "layers",
				Label: "Rétegek",
				Diagram: catalogdto.DiagramOutput{
					Width: 30, Height: 8,
					Shapes: []catalogdto.ShapeOutput{
						{Hotspot: "foundation_wall", Label: "Fal", X: 2, Y: 1, W: 20, H: 2},
						{Hotspot: "footing", Label: "Sávalap", X: 2, Y: 4, W: 20, H: 2},
						{Hotspot: "ghost", Label: "?", X: 24, Y: 1, W: 4, H: 2},
					},
				},
				Records: map[string]catalogdto.RecordOutput{
					"foundation_wall": {ID: "foundation_wall", Title: "Lábazati fal", Accent: "#7c3aed", Body: "Zsalukőből készül."},
					"footing":         {ID: "footing", Title: "Sávalap", Accent: "#475569", Body: "A fagyhatár alá nyúlik."},
				},
			},
			{
				ID:    "soil",
				Label: "Talaj",
				Diagram: catalogdto.DiagramOutput{
					Width: 30, Height: 8,
					Shapes: []catalogdto.ShapeOutput{
						{Hotspot: "foundation_wall", Label: "Fal", X: 2, Y: 1, W: 20, H: 2},
						{Hotspot: "clay", Label: "Agyag", X: 2, Y: 4, W: 20, H: 2},
					},
				},
				Records: map[string]catalogdto.RecordOutput{
					"foundation_wall": {ID: "foundation_wall", Title: "Fal a talajban", Accent: "#0d9488", Body: "Szigetelni kell."},
					"clay":            {ID: "clay", Title: "Agyag", Accent: "#92400e", Body: "Duzzad és zsugorodik."},
				},
			},
		},
		Photos: []catalogdto.PhotoOutput{
			{URL: "https://img.test/strip.jpg", Caption: "Sávalap zsaluzása"},
			{URL: "https://img.test/broken.jpg", Caption: "Vasszerelés"},
		},
	}
}

func mounted(t *testing.T, port Port) Model {
	t.Helper()
	m := New(port, foundation(), "notty")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 90, Height: 60})
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewStartsOnDefaultSubTabWithNothingSelected(t *testing.T) {
	t.Parallel()
	m := mounted(t, &fakePort{})
	if m.SubTab() != "layers" || m.Hotspot() != "" {
		t.Fatalf("state = %q/%q", m.SubTab(), m.Hotspot())
	}
	if _, ok := m.Detail(); ok {
		t.Fatal("no detail expected on mount")
	}
	if strings.Contains(m.View(), "Lábazati fal") {
		t.Fatal("detail panel rendered on mount")
	}
}

func TestHotspotScenario(t *testing.T) {
	t.Parallel()
	m := mounted(t, &fakePort{})

	m.SelectHotspot("foundation_wall")
	rec, ok := m.Detail()
	if !ok || rec.Title != "Lábazati fal" {
		t.Fatalf("detail = %+v, %v", rec, ok)
	}
	if !strings.Contains(m.View(), "Zsalukőből készül.") {
		t.Fatal("detail body not rendered")
	}

	m.SelectHotspot("foundation_wall")
	if _, ok := m.Detail(); ok || m.Hotspot() != "" {
		t.Fatal("second click must deselect")
	}

	m.SelectHotspot("foundation_wall")
	if !m.SelectSubTab("soil") {
		t.Fatal("soil is declared")
	}
	if m.Hotspot() != "" {
		t.Fatalf("sub-tab switch kept hotspot %q", m.Hotspot())
	}
	if _, ok := m.Detail(); ok {
		t.Fatal("detail must disappear after switching sub-tab")
	}
	if m.SelectSubTab("nope") || m.SubTab() != "soil" {
		t.Fatal("unknown sub-tab must be ignored")
	}
}

func TestShapeWithoutRecordShowsNothing(t *testing.T) {
	t.Parallel()
	m := mounted(t, &fakePort{})
	m.SelectHotspot("ghost")
	if m.Hotspot() != "" {
		t.Fatalf("hotspot = %q", m.Hotspot())
	}
	if _, ok := m.Detail(); ok {
		t.Fatal("missing record must render no detail")
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()
	m := mounted(t, &fakePort{})

	m, _ = m.Update(runes("2"))
	if m.Hotspot() != "footing" {
		t.Fatalf("ordinal 2 selected %q", m.Hotspot())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Hotspot() != "" {
		t.Fatal("esc should clear the hotspot")
	}

	m, _ = m.Update(runes("k"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Hotspot() != "foundation_wall" {
		t.Fatalf("focus+enter selected %q", m.Hotspot())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Hotspot() != "" {
		t.Fatal("enter again should toggle off")
	}

	m, _ = m.Update(runes("1"))
	m, _ = m.Update(runes("]"))
	if m.SubTab() != "soil" || m.Hotspot() != "" {
		t.Fatalf("after ] state = %q/%q", m.SubTab(), m.Hotspot())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.SubTab() != "layers" {
		t.Fatalf("sub-tabs should wrap, got %q", m.SubTab())
	}
	m, _ = m.Update(runes("9"))
	if m.Hotspot() != "" {
		t.Fatal("ordinal past the last shape must be ignored")
	}
}

func TestMouseSelectsSubTabAndHotspot(t *testing.T) {
	t.Parallel()
	m := mounted(t, &fakePort{})

	bar := m.tabBar().View()
	idx := strings.Index(bar, "Talaj")
	m, _ = m.Update(click(lipgloss.Width(bar[:idx]), 1))
	if m.SubTab() != "soil" {
		t.Fatalf("tab click selected %q", m.SubTab())
	}

	y := headerRows + m.diagramRow + components.FrameInsetY + 4
	x := components.FrameInsetX + 5
	m, _ = m.Update(click(x, y))
	if m.Hotspot() != "clay" {
		t.Fatalf("diagram click selected %q", m.Hotspot())
	}
	m, _ = m.Update(click(x, y))
	if m.Hotspot() != "" {
		t.Fatal("clicking the same shape again must deselect")
	}
	m, _ = m.Update(click(components.FrameInsetX+25, headerRows+m.diagramRow+components.FrameInsetY))
	if m.Hotspot() != "" {
		t.Fatal("click on empty canvas must not select")
	}
}

func TestPhotoFailureHidesOnlyThatPhoto(t *testing.T) {
	t.Parallel()
	port := &fakePort{broken: map[string]bool{"https://img.test/broken.jpg": true}}
	m := mounted(t, port)
	m.SelectHotspot("footing")

	if cmd := m.TogglePhotos(); cmd == nil {
		t.Fatal("first expansion should start probes")
	}
	for i := range m.topic.Photos {
		m, _ = m.Update(m.probeCmd(i)())
	}

	if !m.PhotosExpanded() {
		t.Fatal("probe results must not collapse the section")
	}
	if m.SubTab() != "layers" || m.Hotspot() != "footing" {
		t.Fatalf("photos changed viewer state: %q/%q", m.SubTab(), m.Hotspot())
	}
	view := m.View()
	if !strings.Contains(view, "Sávalap zsaluzása") {
		t.Fatal("healthy sibling photo disappeared")
	}
	if strings.Contains(view, "Vasszerelés") {
		t.Fatal("broken photo still rendered")
	}

	m.TogglePhotos()
	if m.PhotosExpanded() || m.Hotspot() != "footing" {
		t.Fatal("collapsing must only flip the section")
	}
}

func TestStaleProbeIsDropped(t *testing.T) {
	t.Parallel()
	port := &fakePort{broken: map[string]bool{"https://img.test/strip.jpg": true}}
	old := mounted(t, port)
	stale := old.probeCmd(0)()

	m := mounted(t, port)
	m.TogglePhotos()
	m, _ = m.Update(stale)
	if !strings.Contains(m.View(), "Sávalap zsaluzása") {
		t.Fatal("probe from a previous mount must be ignored")
	}
}

func TestSearchLinkAndOpen(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	m := mounted(t, port)

	m, _ = m.Update(m.Init()())
	if m.SearchURL() != "https://search.test/search?q=savalap&mode=images" {
		t.Fatalf("search url = %q", m.SearchURL())
	}

	_, cmd := m.Update(runes("o"))
	msg, ok := cmd().(SearchOpenedMsg)
	if !ok || msg.Err != nil || msg.Topic != "foundation" {
		t.Fatalf("msg = %#v", msg)
	}
	if len(port.opened) != 1 {
		t.Fatalf("opened = %v", port.opened)
	}
}

func TestNilPortDegradesQuietly(t *testing.T) {
	t.Parallel()
	m := mounted(t, nil)
	if m.Init() != nil || m.OpenSearch() != nil {
		t.Fatal("nil port should produce no commands")
	}
	if cmd := m.TogglePhotos(); cmd != nil {
		t.Fatal("nil port should not probe")
	}
	if !m.PhotosExpanded() {
		t.Fatal("section should still expand")
	}
}
