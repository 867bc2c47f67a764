// Package config loads trinket settings from a TOML file, applies
// environment overrides and fills in platform defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appName = "trinket"

	DefaultPollInterval = 50 * time.Millisecond
	DefaultEventBuffer  = 8
	DefaultLogLevel     = "info"
)

// Environment variables that override the config file
const (
	EnvSnippetsDir = "TRINKET_SNIPPETS_DIR"
	EnvTriggerDir  = "TRINKET_TRIGGER_DIR"
	EnvLogLevel    = "TRINKET_LOG_LEVEL"
)

// Config holds every tunable of the application
type Config struct {
	// SnippetsDir holds one <id>.txt file per snippet
	SnippetsDir string `toml:"snippets_dir"`
	// TriggerDir is watched for add/get trigger files
	TriggerDir string `toml:"trigger_dir"`
	// LogFile receives logs while the overlay owns the terminal
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	// PollInterval is how often the overlay drains hotkey events
	PollInterval time.Duration `toml:"poll_interval"`
	EventBuffer  int           `toml:"event_buffer"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Path returns the default config file location
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the config file at path (the default location when empty).
// A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		cfg = &Config{}
	default:
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces values with any TRINKET_* variables that are set
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv(EnvSnippetsDir); dir != "" {
		c.SnippetsDir = dir
	}
	if dir := os.Getenv(EnvTriggerDir); dir != "" {
		c.TriggerDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// SetDefaults fills zero values and expands ~ in paths
func (c *Config) SetDefaults() {
	if c.SnippetsDir == "" {
		c.SnippetsDir = filepath.Join(DataDir(), appName, "snippets")
	}
	if c.TriggerDir == "" {
		c.TriggerDir = filepath.Join(stateDir(), "triggers")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(stateDir(), appName+".log")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.EventBuffer == 0 {
		c.EventBuffer = DefaultEventBuffer
	}

	c.SnippetsDir = ExpandHome(c.SnippetsDir)
	c.TriggerDir = ExpandHome(c.TriggerDir)
	c.LogFile = ExpandHome(c.LogFile)
}

// Validate reports values that cannot be used
func (c *Config) Validate() error {
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.EventBuffer < 0 {
		return fmt.Errorf("event_buffer must be positive, got %d", c.EventBuffer)
	}
	if c.SnippetsDir == c.TriggerDir {
		return fmt.Errorf("snippets_dir and trigger_dir must differ")
	}
	return nil
}

// OverrideSnippetsDir applies a --dir flag value, if any, and revalidates
func (c *Config) OverrideSnippetsDir(dir string) error {
	if dir == "" {
		return nil
	}
	c.SnippetsDir = ExpandHome(dir)
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DataDir returns the per-user data directory of the platform
func DataDir() string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(home, "AppData", "Local")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support")
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		return filepath.Join(home, ".local", "share")
	}
}

func stateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
