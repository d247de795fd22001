package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "trackersearch"

const (
	defaultCommand    = "tracker-search"
	defaultMaxResults = 15
	defaultBusName    = "io.github.llehouerou.TrackerSearch"
	defaultObjectPath = "/io/github/llehouerou/TrackerSearch"
	defaultDesktopID  = "org.gnome.Nautilus.desktop"
)

type Config struct {
	Command      string `koanf:"command"`       // indexing query executable
	MaxResults   int    `koanf:"max_results"`   // output lines consumed per query, header included
	Launcher     string `koanf:"launcher"`      // default-handler command, e.g. "xdg-open"
	LaunchSearch string `koanf:"launch_search"` // command run with the terms on LaunchSearch
	Icons        string `koanf:"icons"`         // "nerd", "unicode", or "none"
	SniffContent bool   `koanf:"sniff_content"` // read files whose name gives no certain type
	NotifyErrors *bool  `koanf:"notify_errors"` // desktop notification on failures (default: true)
	LogLevel     string `koanf:"log_level"`     // "info" or "debug"

	// Shell search provider registration
	DBus DBusConfig `koanf:"dbus"`
}

// DBusConfig holds the session bus identity of the search provider.
type DBusConfig struct {
	BusName    string `koanf:"bus_name"`
	ObjectPath string `koanf:"object_path"`
	DesktopID  string `koanf:"desktop_id"` // desktop file whose icon and name the shell shows
}

// Load reads the config files in priority order, then extra (if non-empty)
// with the highest priority.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	configPaths := getConfigPaths()
	if extra != "" {
		configPaths = append(configPaths, expandPath(extra))
	}

	for i, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			if extra != "" && i == len(configPaths)-1 {
				// An explicitly requested file must exist
				return nil, err
			}
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Command = expandPath(cfg.Command)
	cfg.Launcher = expandPath(cfg.Launcher)
	cfg.LaunchSearch = expandPath(cfg.LaunchSearch)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/trackersearch/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// QueryCommand returns the indexing query executable.
func (c *Config) QueryCommand() string {
	if strings.TrimSpace(c.Command) == "" {
		return defaultCommand
	}
	return c.Command
}

// ResultLimit returns the number of output lines consumed per query.
func (c *Config) ResultLimit() int {
	if c.MaxResults <= 0 {
		return defaultMaxResults
	}
	return c.MaxResults
}

// ShouldNotify reports whether failures raise desktop notifications.
func (c *Config) ShouldNotify() bool {
	return c.NotifyErrors == nil || *c.NotifyErrors
}

// Debug reports whether debug logging is requested.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// GetDBusConfig returns the bus identity with defaults applied.
func (c *Config) GetDBusConfig() DBusConfig {
	cfg := c.DBus
	if cfg.BusName == "" {
		cfg.BusName = defaultBusName
	}
	if cfg.ObjectPath == "" {
		cfg.ObjectPath = defaultObjectPath
	}
	if cfg.DesktopID == "" {
		cfg.DesktopID = defaultDesktopID
	}
	return cfg
}
