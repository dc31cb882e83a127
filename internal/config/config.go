package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/vango-dev/vquery/internal/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the names searched for, in order of preference.
var ConfigFileNames = []string{"vquery.yaml", "vquery.yml", "vquery.json"}

const (
	// FormatYAML prints results as YAML.
	FormatYAML = "yaml"

	// FormatJSON prints results as JSON.
	FormatJSON = "json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"

	// DefaultDebounce is the default delay before a watched query re-runs.
	DefaultDebounce = 100 * time.Millisecond
)

// Config represents the complete vquery configuration.
type Config struct {
	// Format is the output format (yaml or json).
	Format string `json:"format,omitempty"`

	// Pretty indents JSON output.
	Pretty bool `json:"pretty,omitempty"`

	// NoColor disables ANSI colors in error output.
	NoColor bool `json:"noColor,omitempty"`

	// LogLevel is the minimum slog level (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty"`

	// TextLimit truncates text content in query output. 0 means no limit.
	TextLimit int `json:"textLimit,omitempty"`

	// IncludeRoot lets queries match the fixture's root node.
	IncludeRoot bool `json:"includeRoot,omitempty"`

	// Watch contains settings for the watch command.
	Watch WatchConfig `json:"watch,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// WatchConfig contains settings for the watch command.
type WatchConfig struct {
	// Debounce is the delay before re-running a query (e.g., "100ms").
	Debounce string `json:"debounce,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads the configuration from the first config file found in dir.
func Load(dir string) (*Config, error) {
	path, ok := find(dir)
	if !ok {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("no vquery config found in " + dir)
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from a YAML or JSON file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigInvalid).WithDetail(path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.FromError(err, errors.CodeConfigInvalid).
			WithDetail(path).
			WithSuggestion("Check that the file is valid YAML or JSON")
	}

	cfg := &Config{}
	if err := decode(raw, cfg); err != nil {
		return nil, errors.FromError(err, errors.CodeConfigInvalid).WithDetail(path)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode maps a generic document onto cfg using the json struct tags.
func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatYAML
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = DefaultDebounce.String()
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Format != FormatYAML && c.Format != FormatJSON {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("format must be %q or %q, got %q", FormatYAML, FormatJSON, c.Format)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("logLevel must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.TextLimit < 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("textLimit must not be negative")
	}
	if d, err := time.ParseDuration(c.Watch.Debounce); err != nil || d < 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("watch.debounce must be a non-negative duration, got %q", c.Watch.Debounce)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	if l, ok := parseLevel(c.LogLevel); ok {
		return l
	}
	return slog.LevelWarn
}

// DebounceDuration returns Watch.Debounce as a duration.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d < 0 {
		return DefaultDebounce
	}
	return d
}

func parseLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// find returns the first config file present in dir.
func find(dir string) (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, ok := find(dir)
	return ok
}

// FindConfigDir walks up from startDir to the nearest directory holding a
// config file.
func FindConfigDir(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		if Exists(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest config file above the working
// directory. If none exists, it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	dir, ok := FindConfigDir(wd)
	if !ok {
		return New(), nil
	}
	return Load(dir)
}
