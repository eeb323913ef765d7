package testutil

import "strings"

// Dedent removes the longest whitespace prefix common to all non-blank lines
// of text. A leading newline is removed, and lines consisting only of
// whitespace become empty.
//
// It allows expected output to be written as an indented raw string:
//
//	want := testutil.Dedent(`
//		+---+
//		| X |
//		+---+
//		`)
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	lines := strings.Split(text, "\n")
	margin, first := "", true
	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin, first = indent, false
		} else {
			margin = commonPrefix(margin, indent)
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n]
}
