package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Values come from defaults, overlaid by
// the config file, overlaid by environment variables.
type Config struct {
	// API
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// Cache
	EnableCache     bool   `yaml:"enable_cache"`
	CacheDir        string `yaml:"cache_dir"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`

	// Defaults for browse/explore
	DefaultView     string `yaml:"default_view"`
	DefaultSort     string `yaml:"default_sort"`
	DefaultFilter   string `yaml:"default_filter"`
	DefaultQuantity string `yaml:"default_quantity"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`

	// Logging
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:        "", // adapter falls back to mainnet
		TimeoutSeconds:  30,
		EnableCache:     true,
		CacheDir:        "", // resolved under the user cache dir
		CacheTTLMinutes: 60,
		DefaultView:     "owned",
		DefaultSort:     "quantityDesc",
		DefaultFilter:   "all",
		DefaultQuantity: "all",
		ColorTheme:      "auto",
		TableWidth:      100,
	}
}

// Path returns the config file location, honoring SOLVIEW_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("SOLVIEW_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "solview", "config.yaml"), nil
}

// Load reads the config file if present, merging it over the defaults and
// then applying environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// The API key usually lives in the environment, not on disk.
	if key := os.Getenv("HELIUS_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ResolveCacheDir returns the effective cache directory, defaulting to the
// platform user cache dir.
func (c *Config) ResolveCacheDir() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "solview"), nil
}
