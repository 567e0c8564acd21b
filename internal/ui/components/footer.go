package components

import "hazepito/internal/ui/theme"

// FooterHint is the muted one-line hint under a topic panel.
func FooterHint(text string) string {
	if text == "" {
		return ""
	}
	return theme.Footer.Render(text)
}
