package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/swml/pkg/ports"
)

func TestValidName(t *testing.T) {
	for _, name := range []string{"main", "ivr-v2", "a.b"} {
		assert.True(t, ports.ValidName(name), name)
	}
	for _, name := range []string{"", ".", "..", ".env", "a/b", `a\b`, "../x"} {
		assert.False(t, ports.ValidName(name), name)
	}
}
