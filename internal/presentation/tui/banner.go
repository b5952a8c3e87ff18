package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the swml banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct{ text, color string }{
		{"  ____ __        ____  __ _     ", "#22d3ee"},
		{" / ___|\\ \\      / /  \\/  | |    ", "#38bdf8"},
		{" \\___ \\ \\ \\ /\\ / /| |\\/| | |    ", "#60a5fa"},
		{"  ___) | \\ V  V / | |  | | |___ ", "#818cf8"},
		{" |____/   \\_/\\_/  |_|  |_|_____|", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
