package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// CollapseSpace trims a string and squashes inner whitespace runs
// down to single spaces.
func CollapseSpace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SanitizeColumn strips every non-ASCII rune (byte-order marks included)
// and trims surrounding whitespace. ArcGIS rejects CSV headers containing
// anything fancier.
func SanitizeColumn(name string) string {
	var out strings.Builder
	for _, c := range name {
		if c < 128 {
			out.WriteRune(c)
		}
	}
	return strings.TrimSpace(out.String())
}
