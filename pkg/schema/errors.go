package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptySectionName is reported for a section stored under "".
var ErrEmptySectionName = errors.New("section name must not be empty")

// ValidationError represents a single field validation failure.
// Key is the dotted path of the field, e.g. "sections.main[0].play.volume".
type ValidationError struct {
	Key    string // Field path
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
	Err    error  // Sentinel cause, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

func aggregate(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}

func isAggregate(err error) bool {
	_, ok := err.(*AggregateError)
	return ok
}

func index(i int) string { return "[" + strconv.Itoa(i) + "]" }

// join prefixes a relative key with a path segment.
func join(seg, key string) string {
	switch {
	case key == "":
		return seg
	case seg == "":
		return key
	case strings.HasPrefix(key, "["):
		return seg + key
	default:
		return seg + "." + key
	}
}

// nest flattens err into ValidationErrors keyed below seg. Plain errors
// become a failure of seg itself.
func nest(seg string, value any, err error) []error {
	switch e := err.(type) {
	case *AggregateError:
		var out []error
		for _, child := range e.Errors {
			out = append(out, nest(seg, value, child)...)
		}
		return out
	case *ValidationError:
		cp := *e
		cp.Key = join(seg, e.Key)
		return []error{&cp}
	default:
		return []error{&ValidationError{Key: seg, Reason: err.Error(), Value: value}}
	}
}
