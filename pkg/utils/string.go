// Package utils provides common utility functions.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// IsBlank reports whether s is absent or contains only whitespace.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// CollapseWhitespace replaces every whitespace run with a single space and trims both ends.
func CollapseWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// DisplayWidth returns the number of terminal cells str occupies.
func DisplayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// TruncateWidth truncates str to maxWidth terminal cells, appending "..." when cut.
// Wide characters (CJK, emoji) count as two cells.
func TruncateWidth(str string, maxWidth int) string {
	if DisplayWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, "...")
}

// PadWidth right-pads str with spaces up to width terminal cells.
func PadWidth(str string, width int) string {
	return runewidth.FillRight(str, width)
}
