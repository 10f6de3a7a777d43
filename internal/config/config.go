// Package config loads settings in priority order: defaults, TOML file,
// environment, then command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultCharLimit = 200
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	configDirName  = "todo"
	configFileName = "config.toml"
)

// Config holds all settings for the todo binary.
type Config struct {
	Theme     string `toml:"theme"`
	Group     bool   `toml:"group"`
	AltScreen bool   `toml:"alt_screen"`
	CharLimit int    `toml:"char_limit"`
	Log       Log    `toml:"log"`

	// Path is the file the config was read from, empty when only defaults apply.
	Path string `toml:"-"`
}

// Log configures the charmbracelet logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		Theme:     DefaultTheme,
		AltScreen: true,
		CharLimit: DefaultCharLimit,
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the config from defaults, the config file and the environment.
// An explicit path (or $TODO_CONFIG) must exist; the per-user file is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv("TODO_CONFIG")
	}
	if path == "" {
		explicit = false
		path = userConfigFile()
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges after all sources were applied.
func (c *Config) Validate() error {
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must be >= 0, got %d", c.CharLimit)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_GROUP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Group = b
		}
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// userConfigFile returns <UserConfigDir>/todo/config.toml, or "" when the
// platform has no config dir.
func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, configFileName)
}
