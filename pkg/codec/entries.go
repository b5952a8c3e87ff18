package codec

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value any
}

// Entries lists the pairs of a mapping value in order. Ordered maps keep
// their insertion order; plain maps are sorted by key. The boolean is false
// when v is not a mapping.
func Entries(v any) ([]Entry, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if m == nil {
			return nil, false
		}
		out := make([]Entry, 0, m.Len())
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, Entry{Key: pair.Key, Value: pair.Value})
		}
		return out, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]Entry, 0, len(m))
		for _, k := range keys {
			out = append(out, Entry{Key: k, Value: m[k]})
		}
		return out, true
	}
	return nil, false
}

// Lookup returns the value stored under key in a mapping value.
func Lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if m == nil {
			return nil, false
		}
		return m.Get(key)
	case map[string]any:
		val, ok := m[key]
		return val, ok
	}
	return nil, false
}
