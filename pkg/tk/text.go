package tk

import (
	"strings"
	"unicode/utf8"
)

// Width of a string, in characters.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// Splits s into lines on "\n". A trailing "\r" on each line is dropped. The
// result always has at least one element.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Centers s within w columns. When the padding is odd, the extra space goes to
// the right. Strings at least w wide are returned unchanged.
func center(s string, w int) string {
	pad := w - textWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Pads s with spaces on the right to w columns.
func padRight(s string, w int) string {
	pad := w - textWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
