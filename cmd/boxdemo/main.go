// Boxdemo renders a small window of text widgets, either a built-in one or one
// described in a layout file, and optionally clicks some of its buttons.
package main

import (
	"os"

	"github.com/boxtk/boxtk/pkg/demo"
	"github.com/boxtk/boxtk/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, &demo.Program{}))
}
