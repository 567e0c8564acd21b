package components_test

import (
	"strings"
	"testing"

	"hazepito/internal/modules/catalog/dto"
	viewer "hazepito/internal/modules/viewer/domain"
	"hazepito/internal/ui/components"
)

func photoPanel() components.PhotoPanel {
	return components.PhotoPanel{
		Photos: []dto.PhotoOutput{
			{URL: "https://example.org/a.jpg", Caption: "Sávalap"},
			{URL: "https://example.org/b.jpg", Caption: "Vasalás"},
			{URL: "https://example.org/c.jpg"},
		},
		Section:   viewer.NewPhotoSection(3),
		SearchURL: "https://www.bing.com/search?q=s%C3%A1valap&mode=images",
		Width:     100,
	}
}

func TestPhotoPanelCollapsed(t *testing.T) {
	t.Parallel()
	view := photoPanel().View()
	if !strings.Contains(view, "▸ Fotópéldák") || !strings.Contains(view, "(3)") {
		t.Fatalf("collapsed view = %q", view)
	}
	if strings.Contains(view, "Sávalap") || strings.Contains(view, "bing") {
		t.Fatalf("collapsed view leaks content: %q", view)
	}
}

func TestPhotoPanelHidesFailedPhotoOnly(t *testing.T) {
	t.Parallel()
	p := photoPanel()
	p.Section.Toggle()
	p.Section.MarkLoaded(0)
	p.Section.MarkFailed(1)
	p.Spinner = "◐"

	view := p.View()
	if !strings.Contains(view, "▾ Fotópéldák") {
		t.Fatalf("expanded header missing: %q", view)
	}
	if !strings.Contains(view, "Sávalap") || !strings.Contains(view, "Fotó 3") {
		t.Fatalf("siblings must stay visible: %q", view)
	}
	if strings.Contains(view, "Vasalás") {
		t.Fatalf("failed photo still rendered: %q", view)
	}
	if !strings.Contains(view, "◐") {
		t.Fatalf("pending photo should show the spinner: %q", view)
	}
	if !strings.Contains(view, "mode=images") {
		t.Fatalf("search link missing: %q", view)
	}
}

func TestPhotoPanelNothingToShow(t *testing.T) {
	t.Parallel()
	if got := (components.PhotoPanel{}).View(); got != "" {
		t.Fatalf("got %q", got)
	}
}
