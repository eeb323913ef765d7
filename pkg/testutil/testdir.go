package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boxtk/boxtk/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed after
// the test finishes. The path has symlinks resolved.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "boxtktest"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is equivalent to calling TempDir and Chdir.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the old working directory when
// a test finishes.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
	return dir
}

// Dir describes the layout of a directory. The keys are file names and the
// values are either strings (file contents) or nested Dir values.
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	applyDir(dir, "")
}

func applyDir(dir Dir, prefix string) {
	for name, file := range dir {
		path := filepath.Join(prefix, name)
		switch file := file.(type) {
		case string:
			must.WriteFile(path, file)
		case Dir:
			must.MkdirAll(path)
			applyDir(file, path)
		default:
			panic(fmt.Sprintf("file must be string or Dir, got %T", file))
		}
	}
}
