// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads settings for the j2d command line tools.
//
// Settings are resolved in order: built-in defaults, an optional YAML file
// validated against an embedded JSON schema, then J2D_* environment
// variables. Command line flags are applied last by the caller.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schema []byte

// Environment variables read by ApplyEnv.
const (
	EnvWidth     = "J2D_WIDTH"
	EnvHeight    = "J2D_HEIGHT"
	EnvFrames    = "J2D_FRAMES"
	EnvAngle     = "J2D_ANGLE"
	EnvOutput    = "J2D_OUTPUT"
	EnvFormat    = "J2D_FORMAT"
	EnvLogLevel  = "J2D_LOG_LEVEL"
	EnvLogFormat = "J2D_LOG_FORMAT"
	EnvLogFile   = "J2D_LOG_FILE"
)

// LoggingConfig selects the log level, console format and optional
// rotating log file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`
}

// Config holds the settings of a demo run.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Frames    int     `yaml:"frames"`
	Angle     float64 `yaml:"angle"` // degrees per frame
	LineWidth float64 `yaml:"line_width"`
	Output    string  `yaml:"output"`
	Format    string  `yaml:"format"` // empty: taken from the Output extension

	Logging LoggingConfig `yaml:"logging"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Width:     300,
		Height:    300,
		Frames:    1,
		Angle:     15,
		LineWidth: 1,
		Output:    "j2d.png",
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// ValidationError lists the schema violations of a config file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Load returns the defaults merged with the YAML file at path and the
// environment. An empty path skips the file. The result is not validated;
// call Validate once flags have been applied.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Decode(data, &cfg); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Path = filepath.Base(path)
				return cfg, verr
			}
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// Decode validates YAML data against the schema and merges it into cfg.
// Keys missing from data keep their current values.
func Decode(data []byte, cfg *Config) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{Path: "<input>"}
		for _, e := range result.Errors() {
			verr.Problems = append(verr.Problems, e.String())
		}
		return verr
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	return nil
}

// ApplyEnv overrides cfg with J2D_* environment variables. Unparsable
// numbers are ignored.
func ApplyEnv(cfg *Config) {
	if v := env(EnvWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Width = n
		}
	}
	if v := env(EnvHeight); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Height = n
		}
	}
	if v := env(EnvFrames); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Frames = n
		}
	}
	if v := env(EnvAngle); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Angle = f
		}
	}
	if v := env(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := env(EnvFormat); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := env(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := env(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Validate checks the settings that flags and the environment can break
// after schema validation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	case c.Frames <= 0:
		return fmt.Errorf("config: frames must be positive, got %d", c.Frames)
	case c.LineWidth <= 0:
		return fmt.Errorf("config: line width must be positive, got %v", c.LineWidth)
	case c.Output == "":
		return errors.New("config: empty output path")
	}
	_, err := c.OutputFormat()
	return err
}

// OutputFormat returns the output format name: Format when set, otherwise
// the Output file extension.
func (c Config) OutputFormat() (string, error) {
	f := strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if f == "" {
		f = strings.ToLower(strings.TrimPrefix(filepath.Ext(c.Output), "."))
	}
	switch f {
	case "png", "bmp", "pdf":
		return f, nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("config: unsupported output format %q", f)
}
