package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/aretw0/swml/pkg/codec"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Scalars ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float64:
		// decoders without UseNumber hand us whole floats
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates numeric values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// AnyType accepts every value, including null.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

func (t *AnyType) Validate(any) error { return nil }

// EnumType validates strings drawn from a fixed set.
type EnumType struct {
	values []string
}

func (t *EnumType) Name() string { return "enum(" + strings.Join(t.values, "|") + ")" }

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if !slices.Contains(t.values, s) {
		return fmt.Errorf("%q is not one of %s", s, strings.Join(t.values, ", "))
	}
	return nil
}

// Values returns the accepted strings.
func (t *EnumType) Values() []string { return slices.Clone(t.values) }

// --- Composites ---

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("expected list, got %T", value)
	}

	var errs []error
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			errs = append(errs, nest(index(i), elem, err)...)
		}
	}
	return aggregate(errs)
}

// MapType validates mappings whose values share one type.
type MapType struct {
	elemType Type
}

func (t *MapType) Name() string { return fmt.Sprintf("map[%s]", t.elemType.Name()) }

func (t *MapType) Validate(value any) error {
	entries, ok := codec.Entries(value)
	if !ok {
		return fmt.Errorf("expected mapping, got %T", value)
	}
	var errs []error
	for _, e := range entries {
		if err := t.elemType.Validate(e.Value); err != nil {
			errs = append(errs, nest(e.Key, e.Value, err)...)
		}
	}
	return aggregate(errs)
}

// OneOfType accepts a value matching any of its alternatives.
type OneOfType struct {
	types []Type
}

func (t *OneOfType) Name() string {
	names := make([]string, len(t.types))
	for i, typ := range t.types {
		names[i] = typ.Name()
	}
	return strings.Join(names, "|")
}

func (t *OneOfType) Validate(value any) error {
	var first error
	for _, typ := range t.types {
		err := typ.Validate(value)
		if err == nil {
			return nil
		}
		// Prefer the error of an alternative that matched structurally.
		if first == nil || isAggregate(err) {
			first = err
		}
	}
	if isAggregate(first) {
		return first
	}
	return fmt.Errorf("expected %s, got %T", t.Name(), value)
}

// Field is one key of an ObjectType.
type Field struct {
	Name     string
	Type     Type
	Required bool
}

// Req declares a required field.
func Req(name string, t Type) Field { return Field{Name: name, Type: t, Required: true} }

// Opt declares an optional field.
func Opt(name string, t Type) Field { return Field{Name: name, Type: t} }

// ObjectType validates a mapping with a known set of keys. Unknown keys are
// rejected unless the object is open.
type ObjectType struct {
	fields []Field
	open   bool
}

func (t *ObjectType) Name() string { return "object" }

// Fields returns the declared fields in declaration order.
func (t *ObjectType) Fields() []Field { return slices.Clone(t.fields) }

// IsOpen reports whether undeclared keys are accepted.
func (t *ObjectType) IsOpen() bool { return t.open }

func (t *ObjectType) field(name string) (Field, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (t *ObjectType) Validate(value any) error {
	entries, ok := codec.Entries(value)
	if !ok {
		return fmt.Errorf("expected mapping, got %T", value)
	}

	var errs []error
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.Key] = true
		f, known := t.field(e.Key)
		if !known {
			if !t.open {
				errs = append(errs, &ValidationError{Key: e.Key, Reason: "unknown field", Value: e.Value})
			}
			continue
		}
		if err := f.Type.Validate(e.Value); err != nil {
			errs = append(errs, nest(e.Key, e.Value, err)...)
		}
	}
	for _, f := range t.fields {
		if f.Required && !seen[f.Name] {
			errs = append(errs, &ValidationError{Key: f.Name, Reason: "required"})
		}
	}
	return aggregate(errs)
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Any accepts every value.
func Any() Type { return &AnyType{} }

// Enum creates a validator for strings in values.
func Enum[S ~string](values ...S) Type {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return &EnumType{values: out}
}

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// MapOf creates a validator for mappings with values of elemType.
func MapOf(elemType Type) Type { return &MapType{elemType: elemType} }

// Map accepts any mapping.
func Map() Type { return MapOf(Any()) }

// OneOf accepts values matching at least one of types.
func OneOf(types ...Type) Type { return &OneOfType{types: types} }

// StringOrList accepts a string or a list of strings.
func StringOrList() Type { return OneOf(String(), Slice(String())) }

// Object creates a closed object validator.
func Object(fields ...Field) *ObjectType { return &ObjectType{fields: fields} }

// OpenObject creates an object validator that tolerates undeclared keys.
func OpenObject(fields ...Field) *ObjectType { return &ObjectType{fields: fields, open: true} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// ParseType converts a string type name to a Type.
// Supports "string", "int", "float", "bool", "any", "map" and slices of
// those such as "[string]".
func ParseType(typeStr string) (Type, error) {
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "any":
		return Any(), nil
	case "map", "map[any]":
		return Map(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of field names to type strings into a Schema.
// Example: {"to": "string", "retries": "int"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
