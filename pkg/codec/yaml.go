package codec

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// MaxAliasExpansion caps the number of nodes produced by expanding YAML
// aliases in one document.
const MaxAliasExpansion = 100_000

var (
	// ErrAliasCycle is returned for an alias that refers to a node containing
	// itself, such as "a: &x [*x]".
	ErrAliasCycle = errors.New("yaml alias refers to itself")
	// ErrAliasExpansion is returned when aliases expand past
	// MaxAliasExpansion nodes.
	ErrAliasExpansion = errors.New("yaml aliases expand too far")
)

func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// empty input
		return nil, nil
	}
	d := &yamlDecoder{expanding: make(map[*yaml.Node]bool)}
	return d.fromNode(&doc)
}

type yamlDecoder struct {
	// expanding holds the anchors whose alias is being expanded.
	expanding map[*yaml.Node]bool
	// depth counts the aliases currently being expanded; expanded counts
	// the nodes produced under them.
	depth    int
	expanded int
}

func (d *yamlDecoder) fromNode(n *yaml.Node) (any, error) {
	if d.depth > 0 {
		d.expanded++
		if d.expanded > MaxAliasExpansion {
			return nil, fmt.Errorf("line %d: %w (limit %d nodes)", n.Line, ErrAliasExpansion, MaxAliasExpansion)
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		return d.alias(n)
	case yaml.MappingNode:
		return d.mapping(n)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			val, err := d.fromNode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		return list, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return normalizeScalar(v), nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func (d *yamlDecoder) alias(n *yaml.Node) (any, error) {
	target := n.Alias
	if target == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
	}
	if d.expanding[target] {
		return nil, fmt.Errorf("line %d: %w: *%s", n.Line, ErrAliasCycle, n.Value)
	}
	d.expanding[target] = true
	d.depth++
	defer func() {
		delete(d.expanding, target)
		d.depth--
	}()
	return d.fromNode(target)
}

// mapping decodes a mapping node. Merge keys ("<<: *base") are resolved in
// place: keys written in the mapping itself win over merged ones, and an
// earlier merge source wins over a later one.
func (d *yamlDecoder) mapping(n *yaml.Node) (any, error) {
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; !isMerge(k) {
			explicit[k.Value] = true
		}
	}

	m := orderedmap.New[string, any]()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}
		val, err := d.fromNode(v)
		if err != nil {
			return nil, err
		}
		if !isMerge(k) {
			m.Set(k.Value, val)
			continue
		}
		sources, err := mergeSources(val)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", k.Line, err)
		}
		for _, src := range sources {
			for pair := src.Oldest(); pair != nil; pair = pair.Next() {
				if explicit[pair.Key] {
					continue
				}
				if _, seen := m.Get(pair.Key); !seen {
					m.Set(pair.Key, pair.Value)
				}
			}
		}
	}
	return m, nil
}

func isMerge(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func mergeSources(v any) ([]*orderedmap.OrderedMap[string, any], error) {
	switch t := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		return []*orderedmap.OrderedMap[string, any]{t}, nil
	case []any:
		out := make([]*orderedmap.OrderedMap[string, any], 0, len(t))
		for _, item := range t {
			m, ok := item.(*orderedmap.OrderedMap[string, any])
			if !ok {
				return nil, errors.New("merge sequence must hold mappings")
			}
			out = append(out, m)
		}
		return out, nil
	}
	return nil, errors.New("merge value must be a mapping or a sequence of mappings")
}

// normalizeScalar aligns YAML scalars with what the JSON decoder produces.
func normalizeScalar(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return float64(t)
	}
	return v
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
