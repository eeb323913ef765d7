//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsATTY_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsATTY(tty) {
		t.Errorf("IsATTY returns false for a pty")
	}
}

func TestWinSize_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	err = pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100})
	if err != nil {
		t.Skip("cannot set pty size:", err)
	}
	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize = (%d, %d), want (30, 100)", row, col)
	}
}
