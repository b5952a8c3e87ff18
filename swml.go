package swml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/swml/internal/logging"
	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/domain"
	"github.com/aretw0/swml/pkg/schema"
)

// Document is the root of an SWML script: named sections in insertion
// order. It is safe for concurrent use. The zero value is an empty document
// that logs nothing.
type Document struct {
	mu       sync.RWMutex
	sections domain.OrderedMap[*Section]
	logger   *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used to report section replacements.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{sections: domain.NewOrderedMap[*Section]()}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	return d
}

// AddSection creates an empty section, stores it under name and returns it.
func (d *Document) AddSection(name string) *Section {
	return d.AttachSection(NewSection(name))
}

// AttachSection stores s under its own name and returns it. The document
// keeps a reference, so later appends to s are rendered.
//
// A section already stored under the same name is replaced in place: the
// name keeps its original position and the previous section, though still
// usable, is no longer part of the document.
func (d *Document) AttachSection(s *Section) *Section {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sections.OrderedMap == nil {
		d.sections = domain.NewOrderedMap[*Section]()
	}
	if _, replaced := d.sections.Set(s.Name(), s); replaced && d.logger != nil {
		d.logger.Debug("section replaced", "section", s.Name())
	}
	return s
}

// Section returns the section stored under name.
func (d *Document) Section(name string) (*Section, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.sections.OrderedMap == nil {
		return nil, false
	}
	return d.sections.Get(name)
}

// SectionNames lists section names in insertion order.
func (d *Document) SectionNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.sections.OrderedMap == nil {
		return []string{}
	}
	names := make([]string, 0, d.sections.Len())
	for pair := d.sections.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

type documentBody struct {
	Sections domain.OrderedMap[*Section] `json:"sections" yaml:"sections"`
}

// snapshot copies the section index so rendering does not hold the lock
// while instructions are encoded.
func (d *Document) snapshot() documentBody {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sections := domain.NewOrderedMap[*Section]()
	if d.sections.OrderedMap == nil {
		return documentBody{Sections: sections}
	}
	for pair := d.sections.Oldest(); pair != nil; pair = pair.Next() {
		sections.Set(pair.Key, pair.Value)
	}
	return documentBody{Sections: sections}
}

// MarshalJSON renders the compact JSON form.
func (d *Document) MarshalJSON() ([]byte, error) {
	return compactJSON(d.snapshot())
}

// MarshalYAML returns the {sections: ...} tree.
func (d *Document) MarshalYAML() (any, error) {
	return d.snapshot(), nil
}

// ToJSON renders the document as JSON indented with four spaces, without a
// trailing newline. Characters such as < and & are not escaped.
func (d *Document) ToJSON() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteJSON(&buf); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// ToYAML renders the document as YAML indented with two spaces.
func (d *Document) ToYAML() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteYAML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteJSON writes the indented JSON form followed by a newline.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.snapshot()); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

// WriteYAML writes the YAML form.
func (d *Document) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.snapshot()); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	return nil
}

// Render writes the document in the given format.
func (d *Document) Render(w io.Writer, f codec.Format) error {
	switch f {
	case codec.JSON:
		return d.WriteJSON(w)
	case codec.YAML:
		return d.WriteYAML(w)
	}
	return fmt.Errorf("%w: %q", codec.ErrUnknownFormat, f)
}

// Validate checks the rendered document against the instruction catalogue.
// Rendering never calls it; it reports what the type system cannot, such as
// empty section names, missing required fields or bad enum values.
func (d *Document) Validate() error {
	data, err := d.MarshalJSON()
	if err != nil {
		return err
	}
	tree, err := codec.Decode(data, codec.JSON)
	if err != nil {
		return fmt.Errorf("decode rendered document: %w", err)
	}
	return schema.ValidateDocument(tree)
}

func compactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
