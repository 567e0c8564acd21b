// Package domain holds the selection state machines shared by every topic
// panel: the hotspot viewer, the photo reference section and the root shell.
// None of them perform I/O.
package domain

// None is the empty hotspot selection.
const None = ""

// Lookup returns the hotspot table of one sub-tab. A nil map is an empty table.
type Lookup[R any] func(subTab string) map[string]R

// Viewer is the selectable-hotspot diagram state: one active sub-tab and at
// most one active hotspot that always keys into that sub-tab's table.
type Viewer[R any] struct {
	tabs    []string
	subTab  string
	hotspot string
	lookup  Lookup[R]
}

// NewViewer starts on defaultTab, or the first declared tab when defaultTab
// is not declared, with nothing selected.
func NewViewer[R any](tabs []string, defaultTab string, lookup Lookup[R]) Viewer[R] {
	v := Viewer[R]{tabs: append([]string(nil), tabs...), lookup: lookup}
	switch {
	case v.declared(defaultTab):
		v.subTab = defaultTab
	case len(v.tabs) > 0:
		v.subTab = v.tabs[0]
	}
	return v
}

func (v Viewer[R]) Tabs() []string  { return append([]string(nil), v.tabs...) }
func (v Viewer[R]) SubTab() string  { return v.subTab }
func (v Viewer[R]) Hotspot() string { return v.hotspot }

// SelectSubTab switches the active sub-tab and always clears the hotspot.
// Undeclared ids are ignored.
func (v *Viewer[R]) SelectSubTab(id string) {
	if !v.declared(id) {
		return
	}
	v.subTab = id
	v.hotspot = None
}

// SelectHotspot toggles: selecting the active hotspot again clears it. An id
// missing from the active table leaves nothing selected.
func (v *Viewer[R]) SelectHotspot(id string) {
	if id == None || id == v.hotspot {
		v.hotspot = None
		return
	}
	if _, ok := v.records()[id]; !ok {
		v.hotspot = None
		return
	}
	v.hotspot = id
}

// NextSubTab and PrevSubTab cycle through the declared tabs.
func (v *Viewer[R]) NextSubTab() { v.step(1) }
func (v *Viewer[R]) PrevSubTab() { v.step(-1) }

// Detail returns the record to show in the detail panel, if any.
func (v Viewer[R]) Detail() (R, bool) {
	var zero R
	if v.hotspot == None {
		return zero, false
	}
	rec, ok := v.records()[v.hotspot]
	if !ok {
		return zero, false
	}
	return rec, true
}

func (v Viewer[R]) records() map[string]R {
	if v.lookup == nil || v.subTab == "" {
		return nil
	}
	return v.lookup(v.subTab)
}

func (v Viewer[R]) declared(id string) bool {
	for _, t := range v.tabs {
		if t == id {
			return true
		}
	}
	return false
}

func (v *Viewer[R]) step(delta int) {
	n := len(v.tabs)
	if n == 0 {
		return
	}
	idx := 0
	for i, t := range v.tabs {
		if t == v.subTab {
			idx = i
			break
		}
	}
	v.SelectSubTab(v.tabs[((idx+delta)%n+n)%n])
}
