// Package config loads fiolog settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is written into new config files.
const SchemaVersion = "1.0"

// supportedSchema bounds the config file versions this build understands.
var supportedSchema = version.MustConstraints(version.NewConstraint(">= 1.0, < 2.0"))

// Config holds all fiolog settings.
type Config struct {
	Version   string        `yaml:"version"`
	Format    string        `yaml:"format"`
	OutputDir string        `yaml:"output_dir"`
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"` // text or json
	LogFile   string        `yaml:"log_file"`
	History   HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the local run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty = <config dir>/history.db
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Version:   SchemaVersion,
		Format:    "excel",
		OutputDir: ".",
		LogLevel:  "warn",
		LogFormat: "text",
		History:   HistoryConfig{Enabled: true},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// FIOLOG_* environment overrides. A missing file is not an error unless
// required is set (the user named it explicitly).
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("could not read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the schema version and log format.
func (c Config) Validate() error {
	v, err := version.NewVersion(strings.TrimPrefix(c.Version, "v"))
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", c.Version, err)
	}
	if !supportedSchema.Check(v) {
		return fmt.Errorf("unsupported config version %s (want %s)", v, supportedSchema)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Save writes the config as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyEnv(c *Config) {
	c.Format = getEnvOrDefault("FIOLOG_FORMAT", c.Format)
	c.OutputDir = getEnvOrDefault("FIOLOG_OUTPUT_DIR", c.OutputDir)
	c.LogLevel = getEnvOrDefault("FIOLOG_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("FIOLOG_LOG_FORMAT", c.LogFormat)
	c.LogFile = getEnvOrDefault("FIOLOG_LOG_FILE", c.LogFile)
	if v := os.Getenv("FIOLOG_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = b
		}
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
