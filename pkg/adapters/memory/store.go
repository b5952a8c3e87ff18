package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/ports"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]ports.StoredDocument
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]ports.StoredDocument)}
}

// Save keeps a copy of data.
func (s *Store) Save(_ context.Context, name string, data []byte, f codec.Format) error {
	if !ports.ValidName(name) {
		return fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = ports.StoredDocument{Name: name, Format: f, Data: slices.Clone(data)}
	return nil
}

// Load returns a copy of the stored document.
func (s *Store) Load(_ context.Context, name string) (ports.StoredDocument, error) {
	if !ports.ValidName(name) {
		return ports.StoredDocument{}, fmt.Errorf("%w: %q", ports.ErrInvalidName, name)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[name]
	if !ok {
		return ports.StoredDocument{}, fmt.Errorf("%w: %s", ports.ErrDocumentNotFound, name)
	}
	doc.Data = slices.Clone(doc.Data)
	return doc, nil
}

// Delete removes the document.
func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
