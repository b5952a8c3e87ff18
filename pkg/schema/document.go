package schema

import (
	"fmt"

	"github.com/aretw0/swml/pkg/codec"
)

// ValidateDocument checks a decoded SWML document: a mapping with a
// "sections" mapping of named instruction lists. tree may come from
// codec.Decode or encoding/json. All failures are reported together.
func ValidateDocument(tree any) error {
	entries, ok := codec.Entries(tree)
	if !ok {
		return aggregate([]error{&ValidationError{Reason: fmt.Sprintf("document must be a mapping, got %T", tree), Value: tree}})
	}

	var errs []error
	found := false
	for _, e := range entries {
		switch e.Key {
		case "sections":
			found = true
			errs = append(errs, validateSections(e.Value)...)
		case "version":
			if err := String().Validate(e.Value); err != nil {
				errs = append(errs, nest(e.Key, e.Value, err)...)
			}
		default:
			errs = append(errs, &ValidationError{Key: e.Key, Reason: "unknown field", Value: e.Value})
		}
	}
	if !found {
		errs = append(errs, &ValidationError{Key: "sections", Reason: "required"})
	}
	return aggregate(errs)
}

func validateSections(value any) []error {
	sections, ok := codec.Entries(value)
	if !ok {
		return []error{&ValidationError{Key: "sections", Reason: fmt.Sprintf("expected mapping, got %T", value), Value: value}}
	}

	var errs []error
	list := Instructions()
	for _, s := range sections {
		if s.Key == "" {
			errs = append(errs, &ValidationError{Key: "sections", Reason: ErrEmptySectionName.Error(), Err: ErrEmptySectionName})
		}
		if err := list.Validate(s.Value); err != nil {
			errs = append(errs, nest(join("sections", s.Key), s.Value, err)...)
		}
	}
	return errs
}
