package tk

import "strings"

// Window is a Widget with a title and a list of children, stacked vertically
// inside a frame. A Window owns its children; a widget must not be added to
// more than one Window.
type Window struct {
	title    string
	children []Widget
}

// NewWindow returns an empty Window with the given title. Line breaks in the
// title are shown as spaces.
func NewWindow(title string) *Window {
	title = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(title)
	return &Window{title: title}
}

// Title returns the title of the window.
func (w *Window) Title() string { return w.title }

// Add appends widgets to the children of the window. Nil widgets, including
// nil *Button and *Window values, are ignored.
func (w *Window) Add(widgets ...Widget) {
	for _, widget := range widgets {
		if !isNil(widget) {
			w.children = append(w.children, widget)
		}
	}
}

func isNil(widget Widget) bool {
	switch widget := widget.(type) {
	case nil:
		return true
	case *Button:
		return widget == nil
	case *Window:
		return widget == nil
	}
	return false
}

// Children returns a copy of the children of the window, in the order they
// were added.
func (w *Window) Children() []Widget {
	return append([]Widget(nil), w.children...)
}

// Buttons returns all the buttons in the window, including those in nested
// windows, in the order they are rendered.
func (w *Window) Buttons() []*Button {
	var buttons []*Button
	for _, child := range w.children {
		switch child := child.(type) {
		case *Button:
			buttons = append(buttons, child)
		case *Window:
			buttons = append(buttons, child.Buttons()...)
		}
	}
	return buttons
}

// Click clicks every button in the window whose label text is label, in
// rendering order. It reports whether any button was clicked.
func (w *Window) Click(label string) bool {
	clicked := false
	for _, b := range w.Buttons() {
		if b.label.text == label {
			b.Click()
			clicked = true
		}
	}
	return clicked
}

// Width returns the larger of the title width and the width of the widest
// child, counting the child's own decoration.
func (w *Window) Width() int {
	width := textWidth(w.title)
	for _, child := range w.children {
		if cw := child.columns(); cw > width {
			width = cw
		}
	}
	return width
}

// RenderInto draws the title bar, then the children one after another, all
// inside a frame. Each line is Width()+4 columns wide.
func (w *Window) RenderInto(s Surface) {
	var body Buffer
	for _, child := range w.children {
		child.RenderInto(&body)
	}

	width := w.Width()
	border := "+-" + strings.Repeat("-", width) + "-+"
	s.WriteLine(border)
	s.WriteLine("| " + center(w.title, width) + " |")
	s.WriteLine("+=" + strings.Repeat("=", width) + "=+")
	for _, line := range body.Lines() {
		s.WriteLine("| " + padRight(line, width) + " |")
	}
	s.WriteLine(border)
}

func (w *Window) columns() int { return w.Width() + 4 }
