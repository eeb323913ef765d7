// Package demo implements boxdemo, a program that renders a small window of
// widgets to stdout.
package demo

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/boxtk/boxtk/pkg/layout"
	"github.com/boxtk/boxtk/pkg/logutil"
	"github.com/boxtk/boxtk/pkg/prog"
	"github.com/boxtk/boxtk/pkg/sys"
	"github.com/boxtk/boxtk/pkg/tk"
)

var logger = logutil.GetLogger("[demo] ")

// Greeting is written by the "greet" action.
const Greeting = "You clicked the button!"

// ExitNoButton is the exit status when a -click label matches no button.
const ExitNoButton = 3

// Program is the boxdemo program.
type Program struct {
	layout     string
	clicks     []string
	checkWidth bool
}

// RegisterFlags registers the flags of boxdemo.
func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.clicks = nil
	fs.StringVar(&p.layout, "layout", "",
		"Render the window described in a YAML or TOML layout file instead of the built-in one")
	fs.StringsVar(&p.clicks, "click",
		"After rendering, click the buttons with this label; may be given multiple times")
	fs.BoolVar(&p.checkWidth, "check-width", false,
		"Warn if stdout is a terminal narrower than the rendered window")
}

// Run renders the window, then clicks the buttons named by -click.
func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}

	actions := layout.Actions{
		"greet": func() { fmt.Fprintln(fds[1], Greeting) },
	}
	w, err := p.window(actions)
	if err != nil {
		return err
	}

	if p.checkWidth {
		checkWidth(fds[1], fds[2], tk.RenderString(w))
	}
	if err := tk.RenderTo(fds[1], w); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	logger.Printf("rendered %q, %d columns", w.Title(), w.Width()+4)

	for _, label := range p.clicks {
		if !w.Click(label) {
			fmt.Fprintf(fds[2], "no button labeled %q\n", label)
			return prog.Exit(ExitNoButton)
		}
		logger.Printf("clicked %q", label)
	}
	return nil
}

func (p *Program) window(actions layout.Actions) (*tk.Window, error) {
	if p.layout != "" {
		return layout.Load(p.layout, actions)
	}
	return Window(actions["greet"]), nil
}

// Window returns the built-in demo window. Its button runs greet when
// clicked.
func Window(greet func()) *tk.Window {
	w := tk.NewWindow("Text GUI Demo 1.23")
	w.Add(tk.NewLabel("This is a small text GUI demo."))
	w.Add(tk.NewButton("Click me!", greet))
	return w
}

// Writes a warning to errOut if out is a terminal narrower than text.
func checkWidth(out, errOut *os.File, text string) {
	if !sys.IsATTY(out) {
		logger.Println("stdout is not a terminal, not checking width")
		return
	}
	_, cols := sys.WinSize(out)
	if cols <= 0 {
		logger.Println("cannot determine terminal width")
		return
	}
	if width := frameWidth(text); width > cols {
		fmt.Fprintf(errOut,
			"Warning: window is %d columns wide, but the terminal has only %d\n", width, cols)
	}
}

// Returns the display width of the widest line of text.
func frameWidth(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
