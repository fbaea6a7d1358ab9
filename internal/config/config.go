// Package config handles global CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/doi/config.yml.
// The library core never reads this; it only feeds client options in
// the CLI.
type Config struct {
	BaseURL        string  `yaml:"base_url,omitempty"`
	UserAgent      string  `yaml:"user_agent,omitempty"`
	TimeoutSeconds int     `yaml:"timeout_seconds,omitempty"`
	Proxy          string  `yaml:"proxy,omitempty"`
	RateLimit      float64 `yaml:"rate_limit,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "doi"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/doi/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the configuration file. Returns an empty config (not an
// error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// GetBaseURL returns the resolver base URL override, if any. The
// DOI_BASE_URL environment variable wins over the config file.
func GetBaseURL() string {
	if v := os.Getenv("DOI_BASE_URL"); v != "" {
		return v
	}
	cfg, _ := Load()
	return cfg.BaseURL
}

// GetUserAgent returns the User-Agent override, if any. The
// DOI_USER_AGENT environment variable wins over the config file.
func GetUserAgent() string {
	if v := os.Getenv("DOI_USER_AGENT"); v != "" {
		return v
	}
	cfg, _ := Load()
	return cfg.UserAgent
}

// GetProxy returns the proxy URL override, if any. The DOI_PROXY
// environment variable wins over the config file.
func GetProxy() string {
	if v := os.Getenv("DOI_PROXY"); v != "" {
		return v
	}
	cfg, _ := Load()
	return cfg.Proxy
}
