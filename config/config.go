package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/shorthand/expand"
	"github.com/npillmayer/shorthand/jsx"
	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

type (
	// TracingConfig selects the tracing adapter, its output and trace levels.
	TracingConfig struct {
		Adapter     string            `yaml:"adapter" validate:"oneof=go logrus nop"`
		Destination string            `yaml:"destination,omitempty"`
		Levels      map[string]string `yaml:"levels,omitempty" validate:"dive,oneof=Debug Info Error debug info error"`
	}

	// Config holds all settings.
	Config struct {
		Prefix       string        `yaml:"prefix" validate:"required"`
		Lookback     int           `yaml:"lookback" validate:"min=1"`
		TabSize      int           `yaml:"tab_size" validate:"min=1,max=16"`
		InsertSpaces bool          `yaml:"insert_spaces"`
		StyleModule  string        `yaml:"style_module,omitempty"`
		Tracing      TracingConfig `yaml:"tracing"`
	}
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Default returns the settings in effect if no configuration file is given.
func Default() *Config {
	return &Config{
		Prefix:       jsx.DefaultPrefix,
		Lookback:     expand.DefaultLookback,
		TabSize:      expand.DefaultTabSize,
		InsertSpaces: true,
		Tracing: TracingConfig{
			Adapter: "go",
			Levels: map[string]string{
				"root": "Error",
			},
		},
	}
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path and superimposes its values on
// top of the defaults. An empty path yields the defaults. The result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file %s: %w", path, err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("configuration loaded from %s", path)
	return cfg, nil
}

// Validate checks the settings. All problems found are reported, combined
// into a single error.
func (c *Config) Validate() error {
	var err error
	if e := gencfg.Validate(c); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Prefix != "" && !jsIdentifier.MatchString(c.Prefix) {
		err = multierr.Append(err, fmt.Errorf("prefix %q is not a valid identifier", c.Prefix))
	}
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Dump returns the configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

// Settings returns the settings relevant for line expansion.
func (c *Config) Settings() expand.Settings {
	return expand.Settings{
		Prefix:       c.Prefix,
		Lookback:     c.Lookback,
		TabSize:      c.TabSize,
		InsertSpaces: c.InsertSpaces,
	}
}

// --- schuko.Configuration --------------------------------------------------

const traceLevelPrefix = "tracelevel."

// InitDefaults resets c to the defaults.
func (c *Config) InitDefaults() {
	*c = *Default()
}

// IsSet is a predicate: does key have a non-empty value?
func (c *Config) IsSet(key string) bool {
	_, ok := c.value(key)
	return ok
}

// GetString returns the value of key as a string, or "" if not set.
func (c *Config) GetString(key string) string {
	v, _ := c.value(key)
	return v
}

// GetInt returns the value of an integer key, or 0.
func (c *Config) GetInt(key string) int {
	switch key {
	case "lookback":
		return c.Lookback
	case "tab_size":
		return c.TabSize
	}
	return 0
}

// GetBool returns the value of a boolean key, or false.
func (c *Config) GetBool(key string) bool {
	return key == "insert_spaces" && c.InsertSpaces
}

// IsInteractive is always false.
func (c *Config) IsInteractive() bool {
	return false
}

func (c *Config) value(key string) (string, bool) {
	var v string
	switch key {
	case "prefix":
		v = c.Prefix
	case "lookback":
		v = fmt.Sprint(c.Lookback)
	case "tab_size":
		v = fmt.Sprint(c.TabSize)
	case "insert_spaces":
		v = fmt.Sprint(c.InsertSpaces)
	case "style_module":
		v = c.StyleModule
	case "tracing", "tracing.adapter":
		v = c.Tracing.Adapter
	case "tracing.destination":
		v = c.Tracing.Destination
	default:
		if strings.HasPrefix(key, traceLevelPrefix) {
			v = c.Tracing.Levels[strings.TrimPrefix(key, traceLevelPrefix)]
		}
	}
	return v, v != ""
}

var _ schuko.Configuration = &Config{}
