// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boxtk/boxtk/pkg/must"
	"github.com/boxtk/boxtk/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	out      output
	err      output
}

type output struct {
	content string
	partial bool
	checked bool
}

// ThatProgram returns a new Case that runs the program with the given
// arguments. The program name is added as the first argument.
//
// By default, the case expects the program to exit with 0 and write nothing
// to stdout or stderr.
func ThatProgram(args ...string) Case {
	return Case{args: append([]string{"boxdemo"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s, checked: true}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write some text containing the given text to stdout.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true, checked: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s, checked: true}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write some text containing the given text to stderr.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true, checked: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			checkOutput(t, "stdout", r.out.content, c.want.out)
			checkOutput(t, "stderr", r.err.content, c.want.err)
		})
	}
}

func checkOutput(t *testing.T, name, got string, want output) {
	t.Helper()
	switch {
	case !want.checked:
		if got != "" {
			t.Errorf("got %s %q, want empty", name, got)
		}
	case want.partial:
		if !strings.Contains(got, want.content) {
			t.Errorf("got %s %q, want string containing %q", name, got, want.content)
		}
	default:
		if diff := cmp.Diff(want.content, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", name, diff)
		}
	}
}

// Runs a program with the given arguments and stdin, capturing the exit code
// and the text written to stdout and stderr.
func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := must.Pipe()
	// Write to stdin asynchronously in case the input is larger than the
	// pipe buffer.
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	outCh, errCh := readAllAsync(r1), readAllAsync(r2)
	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()

	return result{
		exitCode: exit,
		out:      output{content: <-outCh},
		err:      output{content: <-errCh},
	}
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}
