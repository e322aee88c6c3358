package util

import (
	"os"

	"github.com/akyairhashvil/sleepbar/internal/config"
	"golang.org/x/term"
)

// FdWriter is an output stream backed by a file descriptor, such as *os.File.
type FdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f FdWriter) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or 0 if f is not a terminal.
func TerminalWidth(f FdWriter) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// ColorEnabled reports whether styled output may be written to f: it must be
// a terminal and NO_COLOR must be unset.
func ColorEnabled(f FdWriter) bool {
	if _, ok := os.LookupEnv(config.NoColorEnv); ok {
		return false
	}
	return IsTerminal(f)
}
