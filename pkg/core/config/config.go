// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MUNCHEX_CONFIG"

// Output formats accepted by [output] format
var OutputFormats = []string{"repr", "tree", "json", "yaml"}

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Output  OutputConfig  `toml:"output" yaml:"output"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EngineConfig holds lexer and parser settings
type EngineConfig struct {
	SourceName     string `toml:"source_name" yaml:"source_name"`
	MaxInputLength int    `toml:"max_input_length" yaml:"max_input_length"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Color       *bool  `toml:"color" yaml:"color"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled   *bool    `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file chosen by extension
func Load(path string) (*Config, error) {
	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mxerror.New("config file not found").
			WithCode(mxerror.CodeNotFound).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, mxerror.Wrap(err, "failed to read config").
				WithCode(mxerror.CodeConfigError).
				WithDetail("path", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, mxerror.Wrap(err, "failed to parse config").
				WithCode(mxerror.CodeConfigError).
				WithDetail("path", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, mxerror.Wrap(err, "failed to parse config").
				WithCode(mxerror.CodeConfigError).
				WithDetail("path", path)
		}
	}

	cfg.applyDefaults()
	cfg.History.Path = expandPath(cfg.History.Path)
	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from MUNCHEX_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	return []string{
		"./configs/munchex.toml",
		"./munchex.toml",
		filepath.Join(os.Getenv("HOME"), ".config/munchex/munchex.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "munchex"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Engine
	if c.Engine.SourceName == "" {
		c.Engine.SourceName = "<stdin>"
	}
	if c.Engine.MaxInputLength == 0 {
		c.Engine.MaxInputLength = 4096
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "munchEx > "
	}
	if c.REPL.Color == nil {
		c.REPL.Color = boolPtr(true)
	}
	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 500
	}

	// History
	if c.History.Enabled == nil {
		c.History.Enabled = boolPtr(true)
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(os.Getenv("HOME"), ".local/share/munchex/history.db")
	}
	if c.History.Retention.Duration == 0 {
		c.History.Retention.Duration = 30 * 24 * time.Hour
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "repr"
	}
}

// Validate checks the configuration for values no component can use
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mxerror.New("invalid configuration: "+field+" "+reason).
			WithCode(mxerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if !IsOutputFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format,
			"must be one of "+strings.Join(OutputFormats, ", "))
	}
	if c.Engine.MaxInputLength < 0 {
		return invalid("engine.max_input_length", c.Engine.MaxInputLength, "must be positive")
	}
	if c.REPL.HistorySize < 0 {
		return invalid("repl.history_size", c.REPL.HistorySize, "must be positive")
	}
	if c.History.Retention.Duration < 0 {
		return invalid("history.retention", c.History.Retention.String(), "must be positive")
	}
	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("general.log_level", c.General.LogLevel, "is not a log level")
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "json", "text", "console", "logfmt":
	default:
		return invalid("general.log_format", c.General.LogFormat, "is not a log format")
	}

	return nil
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// ColorEnabled reports whether the REPL and diagnostics use colors
func (c *Config) ColorEnabled() bool {
	return c.REPL.Color == nil || *c.REPL.Color
}

// HistoryEnabled reports whether runs are recorded
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// IsOutputFormat reports whether format is a known output format
func IsOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Summary returns a short human-readable description of the effective
// configuration
func (c *Config) Summary() string {
	source := c.source
	if source == "" {
		source = "(defaults)"
	}
	return fmt.Sprintf("config=%s log=%s/%s format=%s history=%v",
		source, c.General.LogLevel, c.General.LogFormat, c.Output.Format, c.HistoryEnabled())
}

func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

func boolPtr(b bool) *bool {
	return &b
}
