package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Hungarian accented vowels fold to their base letter so that file names
// like "födém.md" keep a readable id.
var accents = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i",
	"ó", "o", "ö", "o", "ő", "o",
	"ú", "u", "ü", "u", "ű", "u",
)

func Make(input string) string {
	s := accents.Replace(strings.ToLower(strings.TrimSpace(input)))
	s = nonAlphaNum.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "untitled"
	}
	return s
}
