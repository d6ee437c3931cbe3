package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the top-level bookmgr configuration.
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds the books backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 = wait forever
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Language       string        `mapstructure:"language"`
	NotifyDuration time.Duration `mapstructure:"notify_duration"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty disables logging
}

// Validate checks values that would otherwise fail later and far from
// their source.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url %q must be an absolute http(s) URL", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.UI.NotifyDuration <= 0 {
		return fmt.Errorf("ui.notify_duration must be positive")
	}
	return nil
}

// toYAML returns the document written by Save. Durations are kept in their
// human form ("4s") so the file reads back through Load.
func (c *Config) toYAML() map[string]interface{} {
	return map[string]interface{}{
		"api": map[string]interface{}{
			"base_url": c.API.BaseURL,
			"timeout":  c.API.Timeout.String(),
		},
		"ui": map[string]interface{}{
			"language":        c.UI.Language,
			"notify_duration": c.UI.NotifyDuration.String(),
		},
		"log": map[string]interface{}{
			"level": c.Log.Level,
			"file":  c.Log.File,
		},
	}
}
