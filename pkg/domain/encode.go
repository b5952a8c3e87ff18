package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// encodeJSON marshals v without HTML escaping, so expressions such as
// "x < 1 && y > 2" reach the document verbatim.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// tagged wraps a configuration body under its verb key.
func tagged(verb Verb, body any) map[string]any {
	return map[string]any{string(verb): body}
}

// IsNil reports whether i is nil or a nil pointer to an instruction type.
func IsNil(i Instruction) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// compact drops nil instructions. A nil list stays nil.
func compact[T Instruction](list []T) []T {
	if !slices.ContainsFunc(list, func(i T) bool { return IsNil(i) }) {
		return list
	}
	return slices.DeleteFunc(slices.Clone(list), func(i T) bool { return IsNil(i) })
}

// orEmpty keeps required lists rendering as [] instead of null.
func orEmpty(list []Instruction) []Instruction {
	if list == nil {
		return []Instruction{}
	}
	return compact(list)
}

// optionalList distinguishes an unset list (nil, omitted) from an explicitly
// empty one (rendered as []).
func optionalList(list []Instruction) *[]Instruction {
	if list == nil {
		return nil
	}
	list = compact(list)
	return &list
}

// List is an optional list field: nil is omitted, an empty list renders
// as [].
type List[T any] []T

// IsZero reports whether l is unset.
func (l List[T]) IsZero() bool { return l == nil }

// StringOrList holds fields that accept either one string or a list of
// strings. A single element renders in scalar form.
type StringOrList []string

func (s StringOrList) value() any {
	if len(s) == 1 {
		return s[0]
	}
	if s == nil {
		return []string{}
	}
	return []string(s)
}

func (s StringOrList) MarshalJSON() ([]byte, error) { return encodeJSON(s.value()) }
func (s StringOrList) MarshalYAML() (any, error)    { return s.value(), nil }

// OrderedMap is a string-keyed mapping that renders its entries in insertion
// order. Unlike the embedded map's own MarshalJSON it does not HTML-escape
// nested values.
type OrderedMap[V any] struct {
	*orderedmap.OrderedMap[string, V]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() OrderedMap[V] {
	return OrderedMap[V]{orderedmap.New[string, V]()}
}

func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m.OrderedMap != nil {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			key, err := encodeJSON(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := encodeJSON(pair.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m OrderedMap[V]) MarshalYAML() (any, error) {
	if m.OrderedMap == nil {
		return map[string]V{}, nil
	}
	return m.OrderedMap.MarshalYAML()
}
