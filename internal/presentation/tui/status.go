package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Success prints a green check line.
func Success(w io.Writer, format string, args ...any) {
	status(w, "✔", "#22c55e", format, args...)
}

// Failure prints a red cross line.
func Failure(w io.Writer, format string, args ...any) {
	status(w, "✘", "#ef4444", format, args...)
}

func status(w io.Writer, mark, color, format string, args ...any) {
	out := termenv.NewOutput(w)
	line := mark + " " + fmt.Sprintf(format, args...)
	fmt.Fprintln(w, out.String(line).Foreground(out.Color(color)))
}
