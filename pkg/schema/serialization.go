package schema

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/swml/pkg/domain"
)

// MarshalJSON serializes the schema as a map of field names to type strings.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	raw := make(map[string]string, len(s))
	for key, typ := range s {
		if typ == nil {
			return nil, fmt.Errorf("field %s: type is nil", key)
		}
		raw[key] = typ.Name()
	}

	return json.Marshal(raw)
}

// UnmarshalJSON deserializes the schema from a map of field names to type strings.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*s = nil
		return nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Fallback: try map[string]any for cases where JSON decodes to mixed types
		var rawAny map[string]any
		if errAny := json.Unmarshal(data, &rawAny); errAny != nil {
			return err
		}
		raw = make(map[string]string, len(rawAny))
		for key, value := range rawAny {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("field %s: expected string type, got %T", key, value)
			}
			raw[key] = str
		}
	}

	parsed, err := ParseTypeMap(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// FieldInfo describes one field of an instruction's configuration.
type FieldInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// VerbInfo describes one instruction of the catalogue.
type VerbInfo struct {
	Verb      domain.Verb `json:"verb" yaml:"verb"`
	Type      string      `json:"type" yaml:"type"`
	Shorthand bool        `json:"shorthand,omitempty" yaml:"shorthand,omitempty"`
	Open      bool        `json:"open,omitempty" yaml:"open,omitempty"`
	Fields    []FieldInfo `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Describe lists the catalogue in domain.Verbs order.
func Describe() []VerbInfo {
	cat := catalogue()
	out := make([]VerbInfo, 0, len(cat))
	for _, verb := range domain.Verbs() {
		typ := cat[verb]
		info := VerbInfo{Verb: verb, Type: typ.Name(), Shorthand: ShorthandAllowed(verb)}
		if obj, ok := typ.(*ObjectType); ok {
			info.Open = obj.IsOpen()
			for _, f := range obj.Fields() {
				info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Type: f.Type.Name(), Required: f.Required})
			}
		}
		out = append(out, info)
	}
	return out
}
