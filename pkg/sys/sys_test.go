package sys

import (
	"testing"

	"github.com/boxtk/boxtk/pkg/must"
)

func TestIsATTY_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) || IsATTY(w) {
		t.Errorf("IsATTY returns true for a pipe")
	}
}

func TestWinSize_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if row, col := WinSize(w); row != -1 || col != -1 {
		t.Errorf("WinSize of a pipe = (%d, %d), want (-1, -1)", row, col)
	}
}
