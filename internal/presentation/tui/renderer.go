package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style picks a light or dark theme from the terminal background.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return r.Render, nil
}

// Code wraps src in a fenced block so glamour highlights it as lang.
func Code(src, lang string) string {
	return "```" + lang + "\n" + strings.TrimRight(src, "\n") + "\n```\n"
}
