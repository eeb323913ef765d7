// Package tk is a toolkit of text widgets that lay themselves out as boxed
// plain text.
//
// There are three kinds of widgets: [Label], [Button] and [Window]. A Window
// stacks its children vertically and draws a titled frame around them:
//
//	+--------------+
//	|    Title     |
//	+==============+
//	| some label   |
//	| +----------+ |
//	| |    OK    | |
//	| +----------+ |
//	+--------------+
//
// Rendering is a pure in-memory pass; see [Render] and [RenderTo] for writing
// the result out.
package tk

// Widget is the common interface of Label, Button and Window. The set of
// widgets is closed; types outside this package cannot implement Widget.
type Widget interface {
	// Width returns the natural width of the widget's content, in characters.
	Width() int
	// RenderInto appends the lines of the widget to s. The lines of a Button
	// or Window all have the same width, Width plus the fixed decoration of
	// the widget. Label lines are written as they are.
	RenderInto(s Surface)

	// Returns the width of the widest line written by RenderInto.
	columns() int
}

var (
	_ Widget = Label{}
	_ Widget = (*Button)(nil)
	_ Widget = (*Window)(nil)
)
