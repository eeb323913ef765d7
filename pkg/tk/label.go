package tk

// Label is a Widget that shows a text verbatim. The text may span multiple
// lines.
type Label struct {
	text string
}

// NewLabel returns a Label showing the given text.
func NewLabel(text string) Label {
	return Label{text}
}

// Text returns the text of the label.
func (l Label) Text() string { return l.text }

// Width returns the number of characters in the longest line of the text.
func (l Label) Width() int {
	w := 0
	for _, line := range splitLines(l.text) {
		if lw := textWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// RenderInto writes each line of the text as is. Lines shorter than the
// longest one are not padded; an enclosing Window pads them.
func (l Label) RenderInto(s Surface) {
	for _, line := range splitLines(l.text) {
		s.WriteLine(line)
	}
}

func (l Label) columns() int { return l.Width() }
