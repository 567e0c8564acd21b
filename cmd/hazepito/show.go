package main

import (
	"fmt"
	"io"
	"strings"

	catalogdto "hazepito/internal/modules/catalog/dto"
	viewer "hazepito/internal/modules/viewer/domain"
	"hazepito/internal/ui/components"
	"hazepito/internal/ui/theme"
)

// renderTopic prints a topic the way the TUI panel would show it after the
// given sub-tab and hotspot selections.
func renderTopic(w io.Writer, topic catalogdto.TopicOutput, subTab, hotspot string) error {
	ids := make([]string, 0, len(topic.SubTabs))
	byID := make(map[string]catalogdto.SubTabOutput, len(topic.SubTabs))
	tabs := make([]components.Tab, 0, len(topic.SubTabs))
	for _, st := range topic.SubTabs {
		ids = append(ids, st.ID)
		byID[st.ID] = st
		tabs = append(tabs, components.Tab{ID: st.ID, Label: st.Label})
	}
	v := viewer.NewViewer(ids, topic.DefaultSubTab, func(id string) map[string]catalogdto.RecordOutput {
		return byID[id].Records
	})
	if subTab != "" {
		if _, ok := byID[subTab]; !ok {
			return fmt.Errorf("topic %s has no sub-tab %q (have: %s)", topic.ID, subTab, strings.Join(ids, ", "))
		}
		v.SelectSubTab(subTab)
	}
	if hotspot != "" {
		v.SelectHotspot(hotspot)
	}

	st := byID[v.SubTab()]
	accents := make(map[string]string, len(st.Records))
	for id, rec := range st.Records {
		accents[id] = rec.Accent
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(topic.Label))
	if topic.Subtitle != "" {
		sb.WriteString("  " + theme.Muted.Render(topic.Subtitle))
	}
	sb.WriteString("\n" + components.Tabs(tabs, v.SubTab()).View() + "\n\n")
	canvas := components.Diagram{Diagram: st.Diagram, Selected: v.Hotspot(), Accents: accents}.View()
	sb.WriteString(components.DiagramFrame(st.Label, canvas, v.Hotspot() != viewer.None) + "\n")

	if rec, ok := v.Detail(); ok {
		sb.WriteString("\n" + components.DetailPanel{Title: rec.Title, Accent: rec.Accent, Body: rec.Body, Width: st.Diagram.Width + 4}.View(components.Markdown{}) + "\n")
	}

	sb.WriteString("\n")
	for i, sh := range st.Diagram.Shapes {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, sh.Label, sh.Hotspot))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
