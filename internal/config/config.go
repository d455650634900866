// Package config loads and saves the unitconv configuration file and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/unitconv/pkg/measure"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Defaults for a fresh configuration.
const (
	DefaultOutputFormat = FormatTable
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultCategory     = "distance"

	// MaxPrecision bounds output.precision; float64 carries no more
	// meaningful fraction digits than this for everyday magnitudes.
	MaxPrecision = 15
)

// Environment variables that override the configuration file.
const (
	EnvHome            = "UNITCONV_HOME"
	EnvOutputFormat    = "UNITCONV_OUTPUT_FORMAT"
	EnvPrecision       = "UNITCONV_PRECISION"
	EnvLogLevel        = "UNITCONV_LOG_LEVEL"
	EnvLogFormat       = "UNITCONV_LOG_FORMAT"
	EnvDefaultCategory = "UNITCONV_DEFAULT_CATEGORY"
)

const configFileName = "config.yaml"

// Configuration errors.
var (
	ErrUnknownKey          = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("output format must be 'table', 'json' or 'ndjson'")
	ErrPrecisionOutOfRange = fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("log format must be 'console' or 'json'")
)

// Config is the full unitconv configuration.
type Config struct {
	Output    OutputConfig    `yaml:"output"    json:"output"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"`
	Converter ConverterConfig `yaml:"converter" json:"converter"`

	configPath string
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ConverterConfig holds conversion defaults.
type ConverterConfig struct {
	DefaultCategory string `yaml:"default_category" json:"default_category"`
}

// Default returns a configuration with built-in defaults and no file path.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     measure.DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Converter: ConverterConfig{
			DefaultCategory: DefaultCategory,
		},
	}
}

// New returns the configuration at the default path: built-in defaults,
// then the file if it exists, then environment overrides. A broken file is
// reported on stderr and ignored.
func New() *Config {
	path := ""
	if dir, err := GetConfigDir(); err == nil {
		path = filepath.Join(dir, configFileName)
	}
	cfg, err := NewFromPath(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = Default()
		cfg.configPath = path
		cfg.ApplyEnv()
	}
	return cfg
}

// NewFromPath loads the configuration file at path on top of the defaults
// and applies environment overrides. A missing file is not an error.
func NewFromPath(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if path != "" {
		if err := cfg.Load(); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Load reads the configuration file onto c. Sections absent from the file
// keep their current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c to its configuration file, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnv overrides fields from UNITCONV_* environment variables.
// An unparsable precision is ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Output.Precision = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvDefaultCategory); v != "" {
		c.Converter.DefaultCategory = v
	}
}

// Validate checks every section for semantic errors.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: got %d", ErrPrecisionOutOfRange, c.Output.Precision)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	if _, err := measure.ParseCategory(c.Converter.DefaultCategory); err != nil {
		return fmt.Errorf("converter.default_category: %w", err)
	}
	return nil
}

// DefaultCategory returns the parsed converter.default_category, falling
// back to Distance when the value is invalid.
func (c *Config) DefaultCategory() measure.Category {
	cat, err := measure.ParseCategory(c.Converter.DefaultCategory)
	if err != nil {
		return measure.Distance
	}
	return cat
}

// Keys lists the settable configuration keys in display order.
func Keys() []string {
	return []string{
		"output.default_format",
		"output.precision",
		"logging.level",
		"logging.format",
		"logging.file",
		"converter.default_category",
	}
}

// Get returns the value of a dotted configuration key.
func (c *Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return strconv.Itoa(c.Output.Precision), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "converter.default_category":
		return c.Converter.DefaultCategory, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted configuration key. The result is not validated;
// callers run Validate before saving.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "output.precision":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("output.precision must be an integer: %w", err)
		}
		c.Output.Precision = n
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	case "converter.default_category":
		c.Converter.DefaultCategory = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
