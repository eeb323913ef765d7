package tk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// renderTest is a test case to be used in testRender.
type renderTest struct {
	Name  string
	Given Widget
	Want  string
}

// testRender renders each widget and compares the result with the wanted
// text. Line widths are checked separately by checkAligned.
func testRender(t *testing.T, tests []renderTest) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Helper()
			got := RenderString(test.Given)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Errorf("Render output (-want +got):\n%s", diff)
			}
		})
	}
}

// checkAligned checks that every line of the rendering of w has the same
// width, w.columns().
func checkAligned(t *testing.T, w Widget) {
	t.Helper()
	text := RenderString(w)
	for i, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if n := utf8.RuneCountInString(line); n != w.columns() {
			t.Errorf("line %d %q has width %d, want %d", i, line, n, w.columns())
		}
	}
}
