package domain_test

import (
	"testing"

	"hazepito/internal/modules/viewer/domain"
)

type record struct {
	title  string
	accent string
	body   string
}

var fixture = map[string]map[string]record{
	"layers": {
		"foundation_wall": {title: "Foundation wall", accent: "#fab387", body: "Reinforced concrete strip."},
		"insulation":      {title: "Perimeter insulation", accent: "#a6e3a1", body: "XPS boards below grade."},
		"shared":          {title: "Shared id (layers)", accent: "#74c7ec", body: "Same id in two tables."},
	},
	"soil": {
		"gravel": {title: "Gravel bed", accent: "#cdd6f4", body: "Capillary break."},
		"shared": {title: "Shared id (soil)", accent: "#b4befe", body: "Same id in two tables."},
	},
	"empty": nil,
}

func newViewer() domain.Viewer[record] {
	return domain.NewViewer([]string{"layers", "soil", "empty"}, "layers", func(tab string) map[string]record {
		return fixture[tab]
	})
}

func TestViewerDefaultState(t *testing.T) {
	t.Parallel()
	v := newViewer()
	if v.SubTab() != "layers" {
		t.Fatalf("expected default sub-tab layers, got %q", v.SubTab())
	}
	if v.Hotspot() != domain.None {
		t.Fatalf("expected no hotspot, got %q", v.Hotspot())
	}
	if _, ok := v.Detail(); ok {
		t.Fatalf("no detail should render on mount")
	}
}

func TestViewerUndeclaredDefaultFallsBackToFirstTab(t *testing.T) {
	t.Parallel()
	v := domain.NewViewer[record]([]string{"soil", "layers"}, "missing", nil)
	if v.SubTab() != "soil" {
		t.Fatalf("expected first tab, got %q", v.SubTab())
	}
}

func TestSelectHotspotToggleReturnsToNone(t *testing.T) {
	t.Parallel()
	for tab, records := range fixture {
		for id := range records {
			v := newViewer()
			v.SelectSubTab(tab)
			v.SelectHotspot(id)
			if v.Hotspot() != id {
				t.Fatalf("%s/%s: expected selection, got %q", tab, id, v.Hotspot())
			}
			v.SelectHotspot(id)
			if v.Hotspot() != domain.None {
				t.Fatalf("%s/%s: second select should clear, got %q", tab, id, v.Hotspot())
			}
		}
	}
}

func TestSelectHotspotSwitchesBetweenIDs(t *testing.T) {
	t.Parallel()
	v := newViewer()
	v.SelectHotspot("foundation_wall")
	v.SelectHotspot("insulation")
	if v.Hotspot() != "insulation" {
		t.Fatalf("most recent click should win, got %q", v.Hotspot())
	}
}

func TestSubTabSwitchClearsHotspot(t *testing.T) {
	t.Parallel()
	tabs := []string{"layers", "soil", "empty"}
	for _, a := range tabs {
		for _, b := range tabs {
			if a == b {
				continue
			}
			for h := range fixture[a] {
				v := newViewer()
				v.SelectSubTab(a)
				v.SelectHotspot(h)
				v.SelectSubTab(b)
				if v.Hotspot() != domain.None {
					t.Fatalf("%s→%s with %s: hotspot should be cleared, got %q", a, b, h, v.Hotspot())
				}
				if _, ok := v.Detail(); ok {
					t.Fatalf("%s→%s with %s: detail should not render", a, b, h)
				}
			}
		}
	}
}

func TestReselectingSameSubTabAlsoClears(t *testing.T) {
	t.Parallel()
	v := newViewer()
	v.SelectHotspot("insulation")
	v.SelectSubTab("layers")
	if v.Hotspot() != domain.None {
		t.Fatalf("selecting a sub-tab always resets the hotspot")
	}
}

func TestUnknownSubTabIsIgnored(t *testing.T) {
	t.Parallel()
	v := newViewer()
	v.SelectHotspot("insulation")
	v.SelectSubTab("roof")
	if v.SubTab() != "layers" || v.Hotspot() != "insulation" {
		t.Fatalf("unknown sub-tab must not change state: %q/%q", v.SubTab(), v.Hotspot())
	}
}

func TestLookupContainment(t *testing.T) {
	t.Parallel()
	ops := []func(*domain.Viewer[record]){
		func(v *domain.Viewer[record]) { v.SelectHotspot("foundation_wall") },
		func(v *domain.Viewer[record]) { v.SelectHotspot("gravel") },
		func(v *domain.Viewer[record]) { v.SelectHotspot("shared") },
		func(v *domain.Viewer[record]) { v.SelectHotspot("nope") },
		func(v *domain.Viewer[record]) { v.SelectSubTab("soil") },
		func(v *domain.Viewer[record]) { v.SelectSubTab("layers") },
		func(v *domain.Viewer[record]) { v.SelectSubTab("empty") },
		func(v *domain.Viewer[record]) { v.NextSubTab() },
		func(v *domain.Viewer[record]) { v.PrevSubTab() },
	}
	// every sequence of three operations
	for _, a := range ops {
		for _, b := range ops {
			for _, c := range ops {
				v := newViewer()
				for _, op := range []func(*domain.Viewer[record]){a, b, c} {
					op(&v)
					if h := v.Hotspot(); h != domain.None {
						if _, ok := fixture[v.SubTab()][h]; !ok {
							t.Fatalf("hotspot %q is not a key of %q", h, v.SubTab())
						}
					}
				}
			}
		}
	}
}

func TestSelectHotspotMissingFromTableSelectsNothing(t *testing.T) {
	t.Parallel()
	v := newViewer()
	v.SelectHotspot("gravel")
	if v.Hotspot() != domain.None {
		t.Fatalf("id from another table must not be selected, got %q", v.Hotspot())
	}
}

func TestCycleSubTabs(t *testing.T) {
	t.Parallel()
	v := newViewer()
	v.PrevSubTab()
	if v.SubTab() != "empty" {
		t.Fatalf("prev should wrap to last tab, got %q", v.SubTab())
	}
	v.NextSubTab()
	v.NextSubTab()
	if v.SubTab() != "soil" {
		t.Fatalf("expected soil, got %q", v.SubTab())
	}
}

func TestFoundationWallScenario(t *testing.T) {
	t.Parallel()
	v := newViewer()

	v.SelectHotspot("foundation_wall")
	rec, ok := v.Detail()
	if !ok {
		t.Fatalf("detail should render after click")
	}
	if rec.title != "Foundation wall" || rec.accent != "#fab387" || rec.body == "" {
		t.Fatalf("unexpected record %+v", rec)
	}

	v.SelectHotspot("foundation_wall")
	if _, ok := v.Detail(); ok {
		t.Fatalf("second click should hide the detail panel")
	}

	v.SelectHotspot("foundation_wall")
	v.SelectSubTab("soil")
	if v.Hotspot() != domain.None {
		t.Fatalf("switching to soil must clear the selection")
	}
	if _, ok := v.Detail(); ok {
		t.Fatalf("no detail after switching sub-tab")
	}
}

func TestViewerWithoutTabs(t *testing.T) {
	t.Parallel()
	v := domain.NewViewer[record](nil, "", nil)
	v.NextSubTab()
	v.SelectHotspot("x")
	if v.SubTab() != "" || v.Hotspot() != domain.None {
		t.Fatalf("empty viewer should stay empty")
	}
}
