// Package config loads shade settings from a config file, the environment
// and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/palette"
)

const (
	configDirName  = "shade"
	configFileName = "shade"
	configFileType = "yaml"
	envPrefix      = "SHADE"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Colour modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration.
type Config struct {
	Seed        string `mapstructure:"seed" json:"seed"`
	Mode        string `mapstructure:"mode" json:"mode"`
	TargetLevel string `mapstructure:"target_level" json:"target_level"`
	Format      string `mapstructure:"format" json:"format"`
	Color       string `mapstructure:"color" json:"color"`
	LogLevel    string `mapstructure:"log_level" json:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:        "#3B82F6",
		Mode:        "both",
		TargetLevel: string(colour.LevelAA),
		Format:      FormatTable,
		Color:       ColorAuto,
		LogLevel:    "info",
	}
}

// DefaultDir returns the directory searched for shade.yaml.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName)
}

// Load reads configuration. When path is empty, shade.yaml is searched for in
// DefaultDir and the working directory, and a missing file is not an error.
// An explicit path must exist. SHADE_* environment variables override the file,
// and a .env file in the working directory may supply them.
func Load(path string) (*Config, error) {
	// Variables already in the environment win over .env.
	_ = godotenv.Load()

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("target_level", defaults.TargetLevel)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("log_level", defaults.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	var errs []error

	if err := colour.ValidateHex(c.Seed); err != nil {
		errs = append(errs, fmt.Errorf("seed: %w", err))
	}
	if c.Mode != "both" {
		if _, err := palette.ParseMode(c.Mode); err != nil {
			errs = append(errs, fmt.Errorf("mode: %w", err))
		}
	}
	if _, err := colour.ParseTargetLevel(c.TargetLevel); err != nil {
		errs = append(errs, fmt.Errorf("target_level: %w", err))
	}
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("format: unsupported value %q (valid: table, json)", c.Format))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: unsupported value %q (valid: auto, always, never)", c.Color))
	}

	return errors.Join(errs...)
}
