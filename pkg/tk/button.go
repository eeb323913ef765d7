package tk

import "strings"

// Columns a Button adds to the width of its label.
const buttonPadding = 8

// Button is a Widget that shows a label in a box and carries an action.
// Rendering never runs the action; the owner of the button runs it by calling
// Click, typically in response to some input.
type Button struct {
	label  Label
	action func()
}

// NewButton returns a Button with the given label text and action. The action
// may be nil.
func NewButton(label string, action func()) *Button {
	return &Button{NewLabel(label), action}
}

// Label returns the label of the button.
func (b *Button) Label() Label { return b.label }

// Click runs the action of the button, if any.
func (b *Button) Click() {
	if b.action != nil {
		b.action()
	}
}

// Width returns the width of the label plus 8.
func (b *Button) Width() int {
	return b.label.Width() + buttonPadding
}

// RenderInto draws the label centered in a box. Each line is Width()+2
// columns wide.
func (b *Button) RenderInto(s Surface) {
	w := b.Width()
	border := "+" + strings.Repeat("-", w) + "+"
	s.WriteLine(border)
	for _, line := range splitLines(b.label.text) {
		s.WriteLine("|" + center(line, w) + "|")
	}
	s.WriteLine(border)
}

func (b *Button) columns() int { return b.Width() + 2 }
