package framework

import (
	"strings"
	"unicode"
)

// RuneFilter determines which runes are allowed in input.
type RuneFilter func(r rune) bool

// RuneFilterNone allows all printable characters.
func RuneFilterNone(r rune) bool {
	return unicode.IsPrint(r)
}

// RuneFilterNoSpaces allows printable characters except spaces.
func RuneFilterNoSpaces(r rune) bool {
	return unicode.IsPrint(r) && r != ' '
}

// RuneFilterPathSegment allows characters valid in a single folder name.
func RuneFilterPathSegment(r rune) bool {
	return unicode.IsPrint(r) && r != '/' && r != '\\'
}

// FilterRunes returns characters from a string that pass the filter.
// If filter is nil, defaults to RuneFilterNone (all printable).
func FilterRunes(s string, filter RuneFilter) string {
	if filter == nil {
		filter = RuneFilterNone
	}
	var result strings.Builder
	for _, r := range s {
		if filter(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
