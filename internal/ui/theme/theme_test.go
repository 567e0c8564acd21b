package theme_test

import (
	"testing"

	"hazepito/internal/ui/theme"
)

func TestAccent(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"#c0392b": "#c0392b",
		"#abc":    "#abc",
		"":        string(theme.Peach),
		"red":     string(theme.Peach),
		"#12345":  string(theme.Peach),
	}
	for in, want := range cases {
		if got := string(theme.Accent(in)); got != want {
			t.Fatalf("Accent(%q) = %q, want %q", in, got, want)
		}
	}
}
