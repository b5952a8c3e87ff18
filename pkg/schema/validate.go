package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/swml/pkg/codec"
)

// Schema is a map of field names to their expected types.
// Example: {"sales": String(), "retries": Int(), "tags": Slice(String())}
type Schema map[string]Type

// Keys returns the field names in sorted order.
func (s Schema) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Validate checks that every field of the schema is present in data and of
// the right type. data may be a map[string]any or a decoded ordered map.
// Returns an error with all validation failures found.
func Validate(schema Schema, data any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}
	return ValidateFields(schema, data, schema.Keys()...)
}

// ValidateFields validates only specific fields from data against the schema.
// Missing fields are treated as an error.
func ValidateFields(schema Schema, data any, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	if _, ok := codec.Entries(data); !ok && data != nil {
		return aggregate([]error{&ValidationError{Reason: fmt.Sprintf("expected mapping, got %T", data), Value: data}})
	}

	var errs []error
	for _, fieldName := range fields {
		fieldType, exists := schema[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{Key: fieldName, Reason: "not defined in schema"})
			continue
		}

		value, fieldExists := codec.Lookup(data, fieldName)
		if !fieldExists {
			errs = append(errs, &ValidationError{Key: fieldName, Reason: "required"})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, nest(fieldName, value, err)...)
		}
	}
	return aggregate(errs)
}
