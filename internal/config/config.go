// Package config handles the configuration directory, the optional config
// file, and the resolved settings for one run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML config filename inside the config directory.
	ConfigFile = "config.toml"

	// DefaultDataFile is the task document used when nothing else is configured.
	// Relative to the working directory.
	DefaultDataFile = "tasks.json"
)

// Marker styles for the done/not-done indicator.
const (
	MarkersEmoji = "emoji"
	MarkersASCII = "ascii"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the path of the persisted task document.
	DataFile string

	// Markers selects the done marker style (emoji or ascii).
	Markers string

	// NoColor disables terminal colors.
	NoColor bool

	// Quiet suppresses success confirmations.
	Quiet bool

	// Debug enables debug logging.
	Debug bool

	// LogFile receives debug logs. Empty means stderr.
	LogFile string
}

// fileConfig mirrors config.toml. Pointers distinguish unset keys from zero values.
type fileConfig struct {
	DataFile string `toml:"data_file"`
	Markers  string `toml:"markers"`
	NoColor  *bool  `toml:"no_color"`
	Quiet    *bool  `toml:"quiet"`
	Debug    *bool  `toml:"debug"`
	LogFile  string `toml:"log_file"`
}

// New creates a Config with defaults for the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		DataFile: DefaultDataFile,
		Markers:  MarkersEmoji,
	}
}

// Load creates a Config for configDir and applies config.toml if it exists.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)
	if err := cfg.loadFile(cfg.Path()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to the config file.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data file path is empty")
	}
	switch c.Markers {
	case MarkersEmoji, MarkersASCII:
	default:
		return fmt.Errorf("invalid markers %q, must be one of: %s, %s", c.Markers, MarkersEmoji, MarkersASCII)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("loading config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if fc.DataFile != "" {
		c.DataFile = c.resolve(fc.DataFile)
	}
	if fc.Markers != "" {
		c.Markers = strings.ToLower(strings.TrimSpace(fc.Markers))
	}
	if fc.NoColor != nil {
		c.NoColor = *fc.NoColor
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	if fc.LogFile != "" {
		c.LogFile = c.resolve(fc.LogFile)
	}
	return nil
}

// resolve makes a path from the config file relative to the config directory.
func (c *Config) resolve(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Dir, path)
}
