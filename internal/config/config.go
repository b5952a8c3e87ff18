// Package config loads the swml CLI configuration.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional swml.yaml or swml.json file, and command-line overrides
// addressed by dotted keys such as "serve.port".
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/swml/internal/logging"
	"github.com/aretw0/swml/pkg/codec"
)

// FileNames are the names Find looks for, in order.
var FileNames = []string{"swml.yaml", "swml.yml", "swml.json"}

// Config is the resolved configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
	Strict   bool   `mapstructure:"strict"`
	Serve    Serve  `mapstructure:"serve"`
}

// Serve configures the HTTP server. Dir and RedisURL select the document
// store; at most one of them may be set.
type Serve struct {
	Port     int    `mapstructure:"port"`
	Dir      string `mapstructure:"dir"`
	RedisURL string `mapstructure:"redis_url"`
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

// OutputFormat returns the parsed default output format.
func (c Config) OutputFormat() codec.Format {
	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.JSON
	}
	return f
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"log_level": "info",
		"format":    "json",
		"strict":    false,
		"serve": map[string]any{
			"port":      8080,
			"dir":       "",
			"redis_url": "",
		},
	}
}

// Find returns the first config file present in dir, or "" when there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves the configuration. An empty path skips the file layer.
func Load(path string, overrides map[string]any) (Config, error) {
	raw := Defaults()

	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		merge(raw, file)
	}

	for key, value := range overrides {
		set(raw, key, value)
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", displayName(path), err)
	}
	if err := cfg.check(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", displayName(path), err)
	}
	return cfg, nil
}

func (c Config) check() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		errs = append(errs, fmt.Errorf("serve.port %d out of range", c.Serve.Port))
	}
	if c.Serve.Dir != "" && c.Serve.RedisURL != "" {
		errs = append(errs, errors.New("serve.dir and serve.redis_url are mutually exclusive"))
	}
	return errors.Join(errs...)
}

func displayName(path string) string {
	if path == "" {
		return "(defaults)"
	}
	return path
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	switch f {
	case codec.YAML:
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return out, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if cur, isMap := dst[k].(map[string]any); ok && isMap {
			merge(cur, sub)
			continue
		}
		dst[k] = v
	}
}

// set assigns value at a dotted key, creating intermediate maps.
func set(m map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
