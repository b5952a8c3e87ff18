package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "swml version dev\n", out)
}

func TestConvert(t *testing.T) {
	path := writeFile(t, "doc.json", `{"sections":{"main":["answer",{"play":{"url":"say:hi"}}]}}`)

	out, err := run(t, "convert", path)
	require.NoError(t, err)
	assert.Equal(t, "sections:\n  main:\n    - answer\n    - play:\n        url: say:hi\n", out)

	yamlPath := writeFile(t, "doc.yaml", out)
	out, err = run(t, "convert", yamlPath, "--to", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{"main":["answer",{"play":{"url":"say:hi"}}]}}`, out)
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.yaml", "sections:\n  main:\n    - answer\n")
	bad := writeFile(t, "bad.yaml", "sections:\n  main:\n    - play:\n        volume: loud\n")

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.yaml is valid")

	out, err = run(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "sections.main[0].play")
}

func TestValidateFlow(t *testing.T) {
	path := writeFile(t, "flow.yaml", "sections:\n  main:\n    - execute:\n        dest: menu\n  orphan:\n    - hangup\n")

	out, err := run(t, "validate", "--flow", path)
	require.Error(t, err)
	assert.Contains(t, out, `jumps to undefined section "menu"`)
	assert.Contains(t, out, `section "orphan": unreachable from main`)
}

func TestGraph(t *testing.T) {
	path := writeFile(t, "flow.yaml", "sections:\n  main:\n    - execute:\n        dest: menu\n  menu:\n    - hangup\n")

	out, err := run(t, "graph", path)
	require.NoError(t, err)
	assert.Contains(t, out, "main --> menu")
}

func TestNew(t *testing.T) {
	out, err := run(t, "new", "hello", "--list=false", "--format", "yaml", "--param", "name=Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "say:Hello Ada, welcome to SWML.")

	out, err = run(t, "new", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "ivr")
	assert.Contains(t, out, "hello")
}

func TestNewUnknownTemplate(t *testing.T) {
	_, err := run(t, "new", "nope", "--list=false")
	assert.Error(t, err)
}

func TestServeRejectsBadRedisURL(t *testing.T) {
	_, err := run(t, "serve", "--redis-url", "http://nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}
