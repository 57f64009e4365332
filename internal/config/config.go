// Package config loads calcsync config from YAML. Env overrides take
// precedence over the file; built-in defaults cover everything else.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds resolved paths and engine settings.
type Config struct {
	ServerURL        string        `yaml:"server_url"`
	DataDir          string        `yaml:"data_dir"`
	DBPath           string        `yaml:"db_path"`
	LogDBPath        string        `yaml:"log_db_path"`
	ProbeURLs        []string      `yaml:"probe_urls"`
	MaxRetryAttempts int           `yaml:"max_retry_attempts"`
	DrainBatch       int           `yaml:"drain_batch"`
	FailureThreshold int           `yaml:"failure_threshold"`
	DrainInterval    time.Duration `yaml:"drain_interval"`
	ProbeInterval    time.Duration `yaml:"probe_interval"`

	// Token and Passphrase are only read from the environment; secrets
	// never live in the config file.
	Token      string `yaml:"-"`
	Passphrase string `yaml:"-"`
}

// rawConfig is the file shape; intervals are duration strings ("60s").
type rawConfig struct {
	ServerURL        string   `yaml:"server_url"`
	DataDir          string   `yaml:"data_dir"`
	DBPath           string   `yaml:"db_path"`
	LogDBPath        string   `yaml:"log_db_path"`
	ProbeURLs        []string `yaml:"probe_urls"`
	MaxRetryAttempts int      `yaml:"max_retry_attempts"`
	DrainBatch       int      `yaml:"drain_batch"`
	FailureThreshold int      `yaml:"failure_threshold"`
	DrainInterval    string   `yaml:"drain_interval"`
	ProbeInterval    string   `yaml:"probe_interval"`
}

// Load reads config from path, or from
// XDG_CONFIG_HOME/calcsync/config.yaml when path is empty. A missing file
// uses defaults. Env overrides: CALCSYNC_SERVER_URL, CALCSYNC_DATA_DIR,
// CALCSYNC_TOKEN, CALCSYNC_PASSPHRASE.
func Load(path string) (*Config, error) {
	dataHome := xdgDataHome()
	if path == "" {
		path = filepath.Join(xdgConfigHome(), "calcsync", "config.yaml")
	}

	dataDir := filepath.Join(dataHome, "calcsync")
	c := &Config{
		ServerURL: "http://localhost:8080",
		DataDir:   dataDir,
		ProbeURLs: []string{
			"https://www.google.com/generate_204",
			"https://cloudflare.com/cdn-cgi/trace",
		},
		MaxRetryAttempts: 5,
		DrainBatch:       50,
		FailureThreshold: 3,
		DrainInterval:    60 * time.Second,
		ProbeInterval:    30 * time.Second,
	}

	b, err := os.ReadFile(path)
	if err == nil {
		var raw rawConfig
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw.ServerURL != "" {
			c.ServerURL = raw.ServerURL
		}
		if raw.DataDir != "" {
			c.DataDir = resolvePath(raw.DataDir, dataHome)
		}
		if raw.DBPath != "" {
			c.DBPath = resolvePath(raw.DBPath, dataHome)
		}
		if raw.LogDBPath != "" {
			c.LogDBPath = resolvePath(raw.LogDBPath, dataHome)
		}
		if len(raw.ProbeURLs) > 0 {
			c.ProbeURLs = raw.ProbeURLs
		}
		if raw.MaxRetryAttempts > 0 {
			c.MaxRetryAttempts = raw.MaxRetryAttempts
		}
		if raw.DrainBatch > 0 {
			c.DrainBatch = raw.DrainBatch
		}
		if raw.FailureThreshold > 0 {
			c.FailureThreshold = raw.FailureThreshold
		}
		if raw.DrainInterval != "" {
			d, err := time.ParseDuration(raw.DrainInterval)
			if err != nil {
				return nil, fmt.Errorf("invalid drain_interval: %w", err)
			}
			c.DrainInterval = d
		}
		if raw.ProbeInterval != "" {
			d, err := time.ParseDuration(raw.ProbeInterval)
			if err != nil {
				return nil, fmt.Errorf("invalid probe_interval: %w", err)
			}
			c.ProbeInterval = d
		}
	}

	// Env overrides
	if v := os.Getenv("CALCSYNC_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("CALCSYNC_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	c.Token = os.Getenv("CALCSYNC_TOKEN")
	c.Passphrase = os.Getenv("CALCSYNC_PASSPHRASE")

	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "records.db")
	}
	if c.LogDBPath == "" {
		c.LogDBPath = filepath.Join(c.DataDir, "synclog.db")
	}

	return c, nil
}

func xdgDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// resolvePath expands $XDG_DATA_HOME, $XDG_CONFIG_HOME and $HOME in paths
// from the config file.
func resolvePath(p, dataHome string) string {
	return filepath.Clean(os.Expand(p, func(key string) string {
		switch key {
		case "XDG_DATA_HOME":
			return dataHome
		case "XDG_CONFIG_HOME":
			return xdgConfigHome()
		case "HOME":
			home, _ := os.UserHomeDir()
			return home
		}
		return ""
	}))
}
