package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up in the user's home directory.
const FileName = ".multiselect.toml"

// Output formats understood by the runner.
const (
	OutputPlain = "plain"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Option is one selectable entry. Value identifies it; Label is shown.
type Option struct {
	Label string `toml:"label"`
	Value string `toml:"value,omitempty"`
}

// Key returns Value, falling back to Label when no value is set.
func (o Option) Key() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

type Log struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level,omitempty"`
	// Verbose disables truncation of long log messages.
	Verbose bool `toml:"verbose,omitempty"`
}

type Config struct {
	Placeholder          string   `toml:"placeholder"`
	ShowOptionsWhenEmpty bool     `toml:"show_options_when_empty"`
	DefaultOpen          bool     `toml:"default_open"`
	MaxTags              int      `toml:"max_tags"`
	Output               string   `toml:"output"`
	Options              []Option `toml:"options,omitempty"`
	Selected             []string `toml:"selected,omitempty"` // option keys
	Log                  Log      `toml:"log"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Placeholder: "Type to filter…",
		MaxTags:     5,
		Output:      OutputPlain,
		Log:         Log{Level: "info"},
	}
}

// DefaultPath returns ~/.multiselect.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the TOML file at path on top of Default and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("MULTISELECT_PLACEHOLDER")); v != "" {
		cfg.Placeholder = v
	}
	if v := strings.TrimSpace(os.Getenv("MULTISELECT_SHOW_ALL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MULTISELECT_SHOW_ALL: %w", err)
		}
		cfg.ShowOptionsWhenEmpty = b
	}
	if v := strings.TrimSpace(os.Getenv("MULTISELECT_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate checks that option keys are unique, that every pre-selected key
// names an option, and that the output format is known.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Options))
	for i, o := range c.Options {
		if strings.TrimSpace(o.Label) == "" {
			return fmt.Errorf("option %d: empty label", i)
		}
		k := o.Key()
		if seen[k] {
			return fmt.Errorf("option %d: duplicate value %q", i, k)
		}
		seen[k] = true
	}
	for _, k := range c.Selected {
		if !seen[k] {
			return fmt.Errorf("selected value %q is not an option", k)
		}
	}
	switch c.Output {
	case OutputPlain, OutputTable, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.MaxTags < 0 {
		return fmt.Errorf("max_tags must not be negative, got %d", c.MaxTags)
	}
	return nil
}

// Save writes cfg as TOML to path.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
