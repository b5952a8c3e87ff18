package ports

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/aretw0/swml/pkg/codec"
)

var (
	// ErrDocumentNotFound is returned by Load for unknown names.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidName is returned for names that are empty or could escape
	// the store, such as "../x" or ".hidden".
	ErrInvalidName = errors.New("invalid document name")
)

// StoredDocument is a document as it was saved.
type StoredDocument struct {
	Name   string
	Format codec.Format
	Data   []byte
}

// DocumentStore persists raw SWML documents by name.
type DocumentStore interface {
	// Save stores data under name, replacing any previous version.
	Save(ctx context.Context, name string, data []byte, f codec.Format) error

	// Load retrieves a document.
	// Returns ErrDocumentNotFound if the document does not exist.
	Load(ctx context.Context, name string) (StoredDocument, error)

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in sorted order.
	List(ctx context.Context) ([]string, error)
}

// ValidName reports whether name can be used as a document name.
func ValidName(name string) bool {
	return name != "" &&
		!strings.HasPrefix(name, ".") &&
		!strings.ContainsAny(name, `/\`) &&
		filepath.Base(name) == name
}
