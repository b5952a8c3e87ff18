package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/swml/internal/presentation/tui"
	"github.com/aretw0/swml/pkg/codec"
)

// readInput reads path, or stdin for "-". The format comes from the file
// extension unless from is set.
func readInput(path, from string) ([]byte, codec.Format, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	if from != "" {
		f, err := codec.ParseFormat(from)
		return data, f, err
	}
	if path == "-" {
		return data, codec.JSON, nil
	}
	f, err := codec.FormatFromPath(path)
	return data, f, err
}

// writeOutput writes a document to path, or to w when path is empty.
// Terminal output is highlighted.
func writeOutput(w io.Writer, path string, data []byte, f codec.Format) error {
	if path != "" {
		return os.WriteFile(path, data, 0o644)
	}
	if tui.IsTerminal(w) {
		if render, err := tui.NewRenderer(""); err == nil {
			if out, err := render(tui.Code(string(data), string(f))); err == nil {
				_, err = io.WriteString(w, out)
				return err
			}
		}
	}
	_, err := w.Write(data)
	return err
}
