package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml/internal/config"
	"github.com/aretw0/swml/internal/logging"
	"github.com/aretw0/swml/internal/templates"
	"github.com/aretw0/swml/pkg/registry"
)

var (
	cfg    config.Config
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "swml",
	Short: "Build, check and serve SignalWire Markup Language documents",
	Long: `swml converts SWML documents between JSON and YAML, validates them against
the instruction catalogue, scaffolds new documents from templates and serves
them over HTTP or the Model Context Protocol.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: swml.yaml, swml.yml or swml.json in the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate documents before writing or serving them")
}

// loadConfig merges the config file with flags that were set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = config.Find(".")
	}

	overrides := map[string]any{}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides["log_level"] = v
	}
	if flags.Changed("strict") {
		v, _ := flags.GetBool("strict")
		overrides["strict"] = v
	}
	keys := map[string]string{"format": "format"}
	if cmd.Name() == "serve" {
		keys["port"] = "serve.port"
		keys["dir"] = "serve.dir"
		keys["redis-url"] = "serve.redis_url"
	}
	for flag, key := range keys {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	c, err := config.Load(path, overrides)
	if err != nil {
		return err
	}
	cfg = c
	logger = logging.New(cfg.Level())
	slog.SetDefault(logger)
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	return nil
}

func newRegistry() *registry.Registry {
	reg := registry.NewRegistry()
	templates.Register(reg)
	return reg
}
