// Package layout builds widget trees from declarative layout files.
//
// A layout describes a window. Each child is exactly one of a label, a button
// or a nested window; buttons may name an action, which is looked up in an
// Actions registry when the tree is built. In YAML:
//
//	title: Demo
//	children:
//	  - label: This is a demo.
//	  - button: Click me!
//	    action: greet
//	  - window:
//	      title: Nested
//	      children:
//	        - label: inner text
//
// The same structure can be written in TOML using arrays of tables.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boxtk/boxtk/pkg/logutil"
	"github.com/boxtk/boxtk/pkg/tk"
)

var logger = logutil.GetLogger("[layout] ")

// Spec describes a window.
type Spec struct {
	Title    string `yaml:"title" toml:"title"`
	Children []Node `yaml:"children" toml:"children"`
}

// Node describes one child of a window. Exactly one of Label, Button and
// Window must be set. Action may only be set together with Button.
type Node struct {
	Label  *string `yaml:"label" toml:"label"`
	Button *string `yaml:"button" toml:"button"`
	Action string  `yaml:"action" toml:"action"`
	Window *Spec   `yaml:"window" toml:"window"`
}

// Actions maps action names to the functions run when a button is clicked.
type Actions map[string]func()

// Errors wrapped in *Error when a Spec cannot be built.
var (
	ErrEmptyNode       = errors.New("node sets none of label, button and window")
	ErrAmbiguousNode   = errors.New("node sets more than one of label, button and window")
	ErrMisplacedAction = errors.New("action is only allowed on buttons")
	ErrUnknownAction   = errors.New("unknown action")
)

// Error is returned when a node of a Spec is invalid.
type Error struct {
	// Path of the node, like "children[1].window.children[0]".
	Path string
	// Name of the action, for ErrUnknownAction.
	Action string
	Err    error
}

func (e *Error) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s: %v %q", e.Path, e.Err, e.Action)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Build builds a Window from the Spec. Button actions are looked up in
// actions, which may be nil if no button names an action.
func (s *Spec) Build(actions Actions) (*tk.Window, error) {
	return s.build(actions, "")
}

func (s *Spec) build(actions Actions, path string) (*tk.Window, error) {
	w := tk.NewWindow(s.Title)
	for i, node := range s.Children {
		child, err := node.build(actions, fmt.Sprintf("%schildren[%d]", path, i))
		if err != nil {
			return nil, err
		}
		w.Add(child)
	}
	return w, nil
}

func (n *Node) build(actions Actions, path string) (tk.Widget, error) {
	set := 0
	for _, isSet := range []bool{n.Label != nil, n.Button != nil, n.Window != nil} {
		if isSet {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, &Error{Path: path, Err: ErrEmptyNode}
	case set > 1:
		return nil, &Error{Path: path, Err: ErrAmbiguousNode}
	case n.Action != "" && n.Button == nil:
		return nil, &Error{Path: path, Err: ErrMisplacedAction}
	}

	switch {
	case n.Label != nil:
		return tk.NewLabel(*n.Label), nil
	case n.Button != nil:
		var action func()
		if n.Action != "" {
			var ok bool
			action, ok = actions[n.Action]
			if !ok {
				return nil, &Error{Path: path, Action: n.Action, Err: ErrUnknownAction}
			}
		}
		return tk.NewButton(*n.Button, action), nil
	default:
		return n.Window.build(actions, path+".window.")
	}
}

// Parse decodes data in the given format and builds a Window from it.
func Parse(data []byte, f Format, actions Actions) (*tk.Window, error) {
	spec, err := Decode(data, f)
	if err != nil {
		return nil, err
	}
	return spec.Build(actions)
}

// Load reads a layout file and builds a Window from it. The format is
// determined from the file extension with FormatOf.
func Load(path string, actions Actions) (*tk.Window, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data, f, actions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded %s as %s, %d children", path, f, len(w.Children()))
	return w, nil
}

// FormatOf returns the format of a layout file, based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}
