// Package config provides configuration management for the article quality pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"articleqc/internal/validator"
)

// Configuration validation errors.
var (
	ErrMissingInputPath       = errors.New("input.path is required")
	ErrMissingCleanedPath     = errors.New("output.cleaned_path is required")
	ErrMissingReportPath      = errors.New("output.report_path is required")
	ErrInvalidReportFormat    = errors.New("output.report_format must be 'text' or 'json'")
	ErrInvalidMinContentLen   = errors.New("validation.min_content_length must be at least 1")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrValidOnlyOverwritesRaw = errors.New("output.valid_only_path must differ from input.path")
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig locates the raw crawler output.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where cleaned records and the report are written.
type OutputConfig struct {
	CleanedPath   string `yaml:"cleaned_path"`
	ReportPath    string `yaml:"report_path"`
	ReportFormat  string `yaml:"report_format"`
	ValidOnlyPath string `yaml:"valid_only_path"`
	PrettyPrint   bool   `yaml:"pretty_print"`
}

// ValidationConfig tunes the record rules.
type ValidationConfig struct {
	MinContentLength int `yaml:"min_content_length"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{Path: "sample_data.json"},
		Output: OutputConfig{
			CleanedPath:  "cleaned_output.json",
			ReportPath:   "quality_report.txt",
			ReportFormat: FormatText,
			PrettyPrint:  true,
		},
		Validation: ValidationConfig{MinContentLength: validator.DefaultMinContentLen},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from YAML file. Keys missing from the file
// keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.CleanedPath == "" {
		return ErrMissingCleanedPath
	}

	if c.Output.ReportPath == "" {
		return ErrMissingReportPath
	}

	if c.Output.ReportFormat != FormatText && c.Output.ReportFormat != FormatJSON {
		return ErrInvalidReportFormat
	}

	if c.Output.ValidOnlyPath != "" && c.Output.ValidOnlyPath == c.Input.Path {
		return ErrValidOnlyOverwritesRaw
	}

	if c.Validation.MinContentLength < 1 {
		return ErrInvalidMinContentLen
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Cleaned: %s, Report: %s (%s), MinContent: %d}",
		c.Input.Path,
		c.Output.CleanedPath,
		c.Output.ReportPath,
		c.Output.ReportFormat,
		c.Validation.MinContentLength,
	)
}
