package registry

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxParamSize bounds a single parameter value (4KB).
	DefaultMaxParamSize = 4096
	// EnvMaxParamSize overrides DefaultMaxParamSize.
	EnvMaxParamSize = "SWML_MAX_PARAM_SIZE"
)

var (
	ErrParamTooLarge = errors.New("parameter exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("parameter contains invalid UTF-8 sequences")
)

// SanitizeParam rejects oversized or non-UTF-8 values and strips control
// characters other than newline, tab and carriage return. Parameter values
// end up in rendered documents and in logs.
func SanitizeParam(value string) (string, error) {
	limit := maxParamSize()
	if len(value) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrParamTooLarge, len(value), limit)
	}
	if !utf8.ValidString(value) {
		return "", ErrInvalidUTF8
	}

	if !strings.ContainsFunc(value, unsafeControl) {
		return value, nil
	}
	return strings.Map(func(r rune) rune {
		if unsafeControl(r) {
			return -1
		}
		return r
	}, value), nil
}

// SanitizeParams applies SanitizeParam to every value, returning a new map.
func SanitizeParams(params map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(params))
	for k, v := range params {
		clean, err := SanitizeParam(v)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", k, err)
		}
		out[k] = clean
	}
	return out, nil
}

func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

func maxParamSize() int {
	if val := os.Getenv(EnvMaxParamSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxParamSize
}
