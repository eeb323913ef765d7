package tk

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boxtk/boxtk/pkg/testutil"
)

func demoWindow() *Window {
	w := NewWindow("Rust GUI Demo 1.23")
	w.Add(NewLabel("This is a small text GUI demo."))
	w.Add(NewButton("Click me!", nil))
	return w
}

func nestedWindow() *Window {
	inner := NewWindow("Inner")
	inner.Add(NewLabel("a"))
	outer := NewWindow("Outer")
	outer.Add(inner, NewButton("Go", nil))
	return outer
}

func TestWindow_Render(t *testing.T) {
	testRender(t, []renderTest{
		{
			Name:  "label and button",
			Given: demoWindow(),
			Want: testutil.Dedent(`
				+--------------------------------+
				|       Rust GUI Demo 1.23       |
				+================================+
				| This is a small text GUI demo. |
				| +-----------------+            |
				| |    Click me!    |            |
				| +-----------------+            |
				+--------------------------------+
				`),
		},
		{
			Name:  "empty window",
			Given: NewWindow("X"),
			Want: testutil.Dedent(`
				+---+
				| X |
				+===+
				+---+
				`),
		},
		{
			Name:  "empty title and empty label",
			Given: withChildren(NewWindow(""), NewLabel("")),
			Want: testutil.Dedent(`
				+--+
				|  |
				+==+
				|  |
				+--+
				`),
		},
		{
			Name:  "odd title padding goes to the right",
			Given: withChildren(NewWindow("ab"), NewLabel("abcde")),
			Want: testutil.Dedent(`
				+-------+
				|  ab   |
				+=======+
				| abcde |
				+-------+
				`),
		},
		{
			Name:  "nested window and wide button",
			Given: nestedWindow(),
			Want: testutil.Dedent(`
				+--------------+
				|    Outer     |
				+==============+
				| +-------+    |
				| | Inner |    |
				| +=======+    |
				| | a     |    |
				| +-------+    |
				| +----------+ |
				| |    Go    | |
				| +----------+ |
				+--------------+
				`),
		},
		{
			Name:  "line breaks in title become spaces",
			Given: NewWindow("a\nb"),
			Want: testutil.Dedent(`
				+-----+
				| a b |
				+=====+
				+-----+
				`),
		},
	})
}

func withChildren(w *Window, children ...Widget) *Window {
	w.Add(children...)
	return w
}

func TestWindow_Width(t *testing.T) {
	if got := NewWindow("title").Width(); got != 5 {
		t.Errorf("empty window Width() = %d, want 5", got)
	}
	if got := demoWindow().Width(); got != 30 {
		t.Errorf("demo window Width() = %d, want 30", got)
	}
	if got := nestedWindow().Width(); got != 12 {
		t.Errorf("nested window Width() = %d, want 12", got)
	}
}

func TestWindow_WidthCoversTitleAndChildren(t *testing.T) {
	for _, w := range []*Window{demoWindow(), nestedWindow(), NewWindow("a long title here")} {
		width := w.Width()
		if width < textWidth(w.Title()) {
			t.Errorf("%q: Width() = %d, less than title width", w.Title(), width)
		}
		for _, child := range w.Children() {
			if width < child.Width() {
				t.Errorf("%q: Width() = %d, less than child width %d", w.Title(), width, child.Width())
			}
		}
	}
}

func TestWindow_LinesAligned(t *testing.T) {
	for _, w := range []Widget{
		demoWindow(), nestedWindow(), NewWindow(""), NewWindow("X"),
		withChildren(NewWindow("t"), NewButton("a very wide button label", nil), NewLabel("x\ny")),
		withChildren(NewWindow("deep"), withChildren(NewWindow("deeper"), nestedWindow())),
	} {
		checkAligned(t, w)
	}
}

func TestWindow_EmptyWindowHasFourFrameLines(t *testing.T) {
	var b Buffer
	NewWindow("X").RenderInto(&b)
	if b.Len() != 4 {
		t.Errorf("empty window rendered %d frame lines, want 4", b.Len())
	}
}

func TestWindow_AppendingKeepsBodyPrefix(t *testing.T) {
	w := NewWindow("T")
	w.Add(NewLabel("A"), NewButton("B", nil))
	before := bodyLines(w)

	w.Add(NewLabel("a child much wider than the others"))
	after := bodyLines(w)

	if len(after) <= len(before) {
		t.Fatalf("got %d body lines after appending, want more than %d", len(after), len(before))
	}
	for i, line := range before {
		if strings.TrimRight(after[i], " |") != strings.TrimRight(line, " |") {
			t.Errorf("body line %d changed from %q to %q", i, line, after[i])
		}
	}
}

// Returns the body lines of w, excluding the title bar and the bottom border.
func bodyLines(w *Window) []string {
	var b Buffer
	w.RenderInto(&b)
	lines := b.Lines()
	return lines[3 : len(lines)-1]
}

func TestWindow_RenderIsIdempotent(t *testing.T) {
	w := nestedWindow()
	if first, second := RenderString(w), RenderString(w); first != second {
		t.Errorf("renderings differ:\n%s", cmp.Diff(first, second))
	}
}

func TestWindow_AddIgnoresNil(t *testing.T) {
	var nilButton *Button
	var nilWindow *Window
	w := NewWindow("T")
	w.Add(nil, NewLabel("a"), nilButton, nilWindow, nil)
	if n := len(w.Children()); n != 1 {
		t.Errorf("got %d children, want 1", n)
	}
	// Should not panic.
	testRender(t, []renderTest{{
		Name:  "only the label is rendered",
		Given: w,
		Want:  "+---+\n| T |\n+===+\n| a |\n+---+\n",
	}})
}

func TestWindow_ChildrenIsACopy(t *testing.T) {
	w := withChildren(NewWindow("T"), NewLabel("a"))
	w.Children()[0] = NewLabel("b")
	if got := w.Children()[0].(Label).Text(); got != "a" {
		t.Errorf("child changed to %q through Children()", got)
	}
}

func TestWindow_Click(t *testing.T) {
	var clicked []string
	record := func(name string) func() {
		return func() { clicked = append(clicked, name) }
	}
	inner := NewWindow("Inner")
	inner.Add(NewButton("OK", record("inner OK")))
	w := NewWindow("Outer")
	w.Add(NewButton("OK", record("outer OK")), NewLabel("OK"), inner, NewButton("Cancel", record("cancel")))

	if n := len(w.Buttons()); n != 3 {
		t.Errorf("got %d buttons, want 3", n)
	}

	RenderString(w)
	if len(clicked) != 0 {
		t.Errorf("rendering clicked %v", clicked)
	}

	if !w.Click("OK") {
		t.Errorf("Click(OK) = false, want true")
	}
	if diff := cmp.Diff([]string{"outer OK", "inner OK"}, clicked); diff != "" {
		t.Errorf("clicked (-want +got):\n%s", diff)
	}
	if w.Click("Missing") {
		t.Errorf("Click(Missing) = true, want false")
	}
}
