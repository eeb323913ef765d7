package tk

import (
	"io"
	"os"
)

// Render renders w and writes the result to stdout.
func Render(w Widget) error {
	return RenderTo(os.Stdout, w)
}

// RenderTo renders w into a fresh Buffer and writes the result to out with a
// single write, followed by an empty line. A write error is returned as is.
func RenderTo(out io.Writer, w Widget) error {
	_, err := io.WriteString(out, RenderString(w)+"\n")
	return err
}

// RenderString renders w and returns the result. Unlike RenderTo, it does not
// add an empty line at the end.
func RenderString(w Widget) string {
	var buf Buffer
	w.RenderInto(&buf)
	return buf.String()
}
