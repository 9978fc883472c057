// Package config provides configuration management for mitra.
// Configuration is loaded from ~/.config/mitra/config.yaml with sensible
// defaults. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "time/tzdata"

	"github.com/go-universal/jalaali"
	"gopkg.in/yaml.v3"
)

// Config holds the mitra configuration.
type Config struct {
	// Timezone is "local", "tehran" or an IANA zone name.
	Timezone string         `yaml:"timezone"`
	Events   EventsConfig   `yaml:"events"`
	Calendar CalendarConfig `yaml:"calendar"`

	// dir is the directory of the file the config was read from, used to
	// resolve relative paths.
	dir string
}

// EventsConfig holds event dataset configuration.
type EventsConfig struct {
	// Path overrides the bundled dataset when set.
	Path string `yaml:"path"`
}

// CalendarConfig holds calendar rendering configuration.
type CalendarConfig struct {
	Color       string `yaml:"color"`
	HijriAdjust int    `yaml:"hijri_adjust"`
}

const (
	// DefaultConfigPath is the default location for the config file.
	DefaultConfigPath = "~/.config/mitra/config.yaml"

	// EnvConfigPath names the environment variable overriding DefaultConfigPath.
	EnvConfigPath = "MITRA_CONFIG"

	TimezoneLocal  = "local"
	TimezoneTehran = "tehran"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// MaxHijriAdjust bounds calendar.hijri_adjust in either direction.
	MaxHijriAdjust = 2
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var (
	globalConfig *Config
	configOnce   sync.Once
	configErr    error
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Timezone: TimezoneLocal,
		Calendar: CalendarConfig{Color: ColorAuto},
	}
}

// Load loads the configuration from path, or from $MITRA_CONFIG or
// DefaultConfigPath when path is empty. It returns the cached config on
// subsequent calls, whatever path they pass.
func Load(path string) (*Config, error) {
	configOnce.Do(func() {
		globalConfig, configErr = loadFromPath(ResolvePath(path))
	})
	return globalConfig, configErr
}

// ResolvePath returns the config file that Load would read for path.
func ResolvePath(path string) string {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}
	return expandPath(path)
}

// loadFromPath loads configuration from a specific file path.
func loadFromPath(path string) (*Config, error) {
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file doesn't exist - use defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Timezone == "" {
		cfg.Timezone = TimezoneLocal
	}
	if cfg.Calendar.Color == "" {
		cfg.Calendar.Color = ColorAuto
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first bad one.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Calendar.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: calendar.color %q: want auto, always or never", ErrInvalid, c.Calendar.Color)
	}
	if a := c.Calendar.HijriAdjust; a < -MaxHijriAdjust || a > MaxHijriAdjust {
		return fmt.Errorf("%w: calendar.hijri_adjust %d: out of range [-%d, %d]", ErrInvalid, a, MaxHijriAdjust, MaxHijriAdjust)
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	switch strings.ToLower(c.Timezone) {
	case "", TimezoneLocal:
		return time.Local, nil
	case TimezoneTehran:
		return jalaali.TehranTz(), nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalid, c.Timezone, err)
	}
	return loc, nil
}

// ColorEnabled reports whether holidays are painted, given whether stdout
// is a terminal.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.Calendar.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal
}

// EventsPath returns the dataset override, expanded, or "" for the bundled
// dataset. Relative paths are resolved from the config file's directory.
func (c *Config) EventsPath() string {
	p := c.Events.Path
	if p == "" {
		return ""
	}
	p = expandPath(p)
	if !filepath.IsAbs(p) && c.dir != "" {
		p = filepath.Join(c.dir, p)
	}
	return p
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ResetForTesting resets the global config state. Only use in tests.
func ResetForTesting() {
	configOnce = sync.Once{}
	globalConfig = nil
	configErr = nil
}
