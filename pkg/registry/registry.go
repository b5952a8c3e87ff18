// Package registry names document generators so adapters can render them on
// request.
package registry

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/schema"
)

// ErrNotFound is returned when no document is registered under a name.
var ErrNotFound = errors.New("document not found")

// DocumentFunc builds a document from request parameters.
type DocumentFunc func(ctx context.Context, params map[string]string) (*swml.Document, error)

// Entry is a registered generator.
type Entry struct {
	Name        string
	Description string
	// Params lists the required parameters and their types.
	Params schema.Schema
	Build  DocumentFunc
}

// Option configures an Entry.
type Option func(*Entry)

// WithDescription documents the generator for listings.
func WithDescription(text string) Option {
	return func(e *Entry) {
		e.Description = text
	}
}

// WithParams declares the required parameters. They are checked before
// the generator runs.
func WithParams(s schema.Schema) Option {
	return func(e *Entry) {
		e.Params = s
	}
}

// Registry manages the available document generators.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register adds a generator to the registry.
// If a generator with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn DocumentFunc, opts ...Option) {
	e := Entry{Name: name, Build: fn}
	for _, opt := range opts {
		opt(&e)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = e
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Build validates params and runs the named generator.
func (r *Registry) Build(ctx context.Context, name string, params map[string]string) (*swml.Document, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	params, err := SanitizeParams(params)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}

	if len(e.Params) > 0 {
		data := make(map[string]any, len(params))
		for k, v := range params {
			data[k] = v
		}
		if err := schema.Validate(e.Params, data); err != nil {
			return nil, fmt.Errorf("document %s: %w", name, err)
		}
	}

	doc, err := e.Build(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}
	return doc, nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// Entries lists registered entries sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, name := range slices.Sorted(maps.Keys(r.entries)) {
		out = append(out, r.entries[name])
	}
	return out
}
