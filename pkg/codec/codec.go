// Package codec decodes and encodes SWML documents as generic, order
// preserving trees.
//
// Mappings decode to *orderedmap.OrderedMap[string, any], sequences to []any
// and scalars to string, bool, int64, float64 or nil. Encoding keeps the key
// order of the tree, so a document converted between JSON and YAML keeps its
// section and field order.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than JSON and YAML.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// ContentType returns the media type used when serving f over HTTP.
func (f Format) ContentType() string {
	if f == YAML {
		return "application/yaml"
	}
	return "application/json"
}

// Decode parses data into a generic tree.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case JSON:
		return decodeJSON(data)
	case YAML:
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Encode renders a tree (or any value the standard encoders accept). JSON is
// indented with four spaces and YAML with two; both end with a newline.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return encodeJSON(v)
	case YAML:
		return encodeYAML(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Convert decodes data in one format and re-encodes it in another.
func Convert(data []byte, from, to Format) ([]byte, error) {
	tree, err := Decode(data, from)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", from, err)
	}
	out, err := Encode(tree, to)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", to, err)
	}
	return out, nil
}
