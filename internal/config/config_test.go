package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/pkg/codec"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info", Format: "json", Serve: Serve{Port: 8080}}, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, codec.JSON, cfg.OutputFormat())
}

func TestLoadYAML(t *testing.T) {
	path := write(t, t.TempDir(), "swml.yaml", "format: yaml\nstrict: true\nserve:\n  dir: ./docs\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, codec.YAML, cfg.OutputFormat())
	assert.True(t, cfg.Strict)
	assert.Equal(t, "./docs", cfg.Serve.Dir)
	assert.Equal(t, 8080, cfg.Serve.Port, "unset nested keys keep their default")
}

func TestLoadJSON(t *testing.T) {
	path := write(t, t.TempDir(), "swml.json", `{"log_level":"debug","serve":{"port":9090}}`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 9090, cfg.Serve.Port)
}

func TestOverridesWin(t *testing.T) {
	path := write(t, t.TempDir(), "swml.yaml", "serve:\n  port: 9000\n")

	cfg, err := Load(path, map[string]any{"serve.port": "7000", "strict": "true"})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Serve.Port)
	assert.True(t, cfg.Strict)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"unknown key", write(t, dir, "a.yaml", "colour: blue\n"), "colour"},
		{"bad level", write(t, dir, "b.yaml", "log_level: loud\n"), "unknown log level"},
		{"bad format", write(t, dir, "c.yaml", "format: toml\n"), "unknown format"},
		{"bad port", write(t, dir, "d.json", `{"serve":{"port":70000}}`), "out of range"},
		{"two stores", write(t, dir, "g.yaml", "serve:\n  dir: ./docs\n  redis_url: redis://localhost:6379/0\n"), "mutually exclusive"},
		{"bad syntax", write(t, dir, "e.json", `{`), "parse config"},
		{"unknown extension", write(t, dir, "f.toml", ""), "unknown format"},
		{"missing file", filepath.Join(dir, "nope.yaml"), "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, Find(dir))

	jsonPath := write(t, dir, "swml.json", "{}")
	assert.Equal(t, jsonPath, Find(dir))

	yml := write(t, dir, "swml.yaml", "")
	assert.Equal(t, yml, Find(dir))
}
