// SPDX-License-Identifier: MIT

// Package config resolves the realdual command configuration: built-in
// defaults, then an optional YAML file, then REALDUAL_* environment
// variables. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/realdual/expr"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "REALDUAL_"

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "csv"}

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved command configuration.
type Config struct {
	Format      string `yaml:"format" env:"FORMAT"`
	Locale      string `yaml:"locale" env:"LOCALE"`
	Samples     int    `yaml:"samples" env:"SAMPLES"`
	Precision   int    `yaml:"precision" env:"PRECISION"` // -1: shortest representation
	Variable    string `yaml:"variable" env:"VARIABLE"`
	CatalogFile string `yaml:"catalog" env:"CATALOG"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format:    "text",
		Locale:    "en",
		Samples:   11,
		Precision: -1,
		Variable:  expr.DefaultVariable,
		LogLevel:  "warn",
	}
}

// Load resolves defaults, then the YAML file at path (skipped when path is
// empty), then the environment. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// mergeFile overlays the keys set in path onto c. An empty file sets
// nothing.
func (c *Config) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// ParseEnv overlays REALDUAL_* environment variables onto target. Fields
// whose variable is unset keep their value.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q: must be one of %v", ErrInvalid, c.Format, Formats)
	}
	if _, err := c.Language(); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples %d: need at least 2", ErrInvalid, c.Samples)
	}
	if c.Precision < -1 {
		return fmt.Errorf("%w: precision %d: must be -1 (shortest) or >= 0", ErrInvalid, c.Precision)
	}
	if err := expr.ValidVariable(c.Variable); err != nil {
		return fmt.Errorf("%w: variable: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalid, c.LogLevel, err)
	}

	return nil
}

// Language parses Locale.
func (c Config) Language() (language.Tag, error) {
	return language.Parse(c.Locale)
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}
