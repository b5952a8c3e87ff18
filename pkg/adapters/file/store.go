// Package file stores SWML documents as files in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/ports"
)

// extensions are tried in order by Load.
var extensions = []string{".json", ".yaml", ".yml"}

// Store implements ports.DocumentStore over <BasePath>/<name>.{json,yaml,yml}.
type Store struct {
	BasePath string
}

// NewStore creates a Store rooted at basePath. An empty basePath means the
// working directory.
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{BasePath: basePath}
}

func ext(f codec.Format) string {
	if f == codec.YAML {
		return ".yaml"
	}
	return ".json"
}

// Save writes data to <name>.json or <name>.yaml and removes copies of the
// document stored under the other extensions.
func (s *Store) Save(ctx context.Context, name string, data []byte, f codec.Format) error {
	if !ports.ValidName(name) {
		return fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure document directory: %w", err)
	}

	target := ext(f)
	if err := os.WriteFile(filepath.Join(s.BasePath, name+target), data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	for _, e := range extensions {
		if e == target {
			continue
		}
		if err := os.Remove(filepath.Join(s.BasePath, name+e)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove stale document: %w", err)
		}
	}
	return nil
}

// Load reads the first of <name>.json, <name>.yaml and <name>.yml found.
func (s *Store) Load(ctx context.Context, name string) (ports.StoredDocument, error) {
	if !ports.ValidName(name) {
		return ports.StoredDocument{}, fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}
	for _, e := range extensions {
		path := filepath.Join(s.BasePath, name+e)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return ports.StoredDocument{}, fmt.Errorf("failed to read document: %w", err)
		}
		f, err := codec.FormatFromPath(path)
		if err != nil {
			return ports.StoredDocument{}, err
		}
		return ports.StoredDocument{Name: name, Format: f, Data: data}, nil
	}
	return ports.StoredDocument{}, fmt.Errorf("%w: %s", ports.ErrDocumentNotFound, name)
}

// Delete removes every file of the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !ports.ValidName(name) {
		return fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}
	for _, e := range extensions {
		if err := os.Remove(filepath.Join(s.BasePath, name+e)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to delete document: %w", err)
		}
	}
	return nil
}

// List returns the names of all documents in the directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		e := filepath.Ext(entry.Name())
		if !slices.Contains(extensions, e) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), e)
		if ports.ValidName(name) && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
