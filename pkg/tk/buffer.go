package tk

import "strings"

// Surface is an append-only sink of text lines. Widgets render into a Surface
// and never read back from it.
type Surface interface {
	// WriteLine appends one complete line. The line must not contain a line
	// break; the Surface terminates it.
	WriteLine(line string)
}

// Buffer is a Surface that keeps the lines in memory.
type Buffer struct {
	lines []string
}

// WriteLine appends a line to the buffer.
func (b *Buffer) WriteLine(line string) {
	b.lines = append(b.lines, line)
}

// Lines returns the lines written so far. The returned slice must not be
// modified.
func (b *Buffer) Lines() []string { return b.lines }

// Len returns the number of lines written so far.
func (b *Buffer) Len() int { return len(b.lines) }

// String returns the content of the buffer, with every line terminated by a
// newline.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
