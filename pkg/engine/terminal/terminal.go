// Package terminal reports the size and capabilities of the output terminal.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal returns true if w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SizeOf returns the width and height of the terminal behind w.
// Falls back to defaults if w is not a terminal.
func SizeOf(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
