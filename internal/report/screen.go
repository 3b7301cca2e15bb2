package report

import (
	"io"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ClearScreen clears w when it is a terminal and does nothing otherwise.
func ClearScreen(w io.Writer) error {
	if !IsTerminal(w) {
		return nil
	}
	_, err := io.WriteString(w, clearSequence)
	return err
}
