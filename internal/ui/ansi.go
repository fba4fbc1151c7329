package ui

import (
	"fmt"
	"io"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	under = "\033[4m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var colorEnabled bool

// SetColor turns escape sequences on or off. The caller decides based on
// the terminal it writes to and the no-color settings.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// C wraps s in color when colors are enabled.
func C(color, s string) string {
	if !colorEnabled || color == "" {
		return s
	}
	return color + s + reset
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, current.SymCross+" "+msg))
}

// Warn is used for conditions the user can fix, like a missing user id.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Pending, "! "+msg))
}
