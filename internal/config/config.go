// Package config provides configuration management for orgc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the orgc configuration.
type Config struct {
	// DefaultTodoKeywords applies to documents that carry no #+TODO
	// line of their own. The last keyword counts as completed.
	DefaultTodoKeywords []string `yaml:"default_todo_keywords,omitempty"`
	// DontIndent disables level-based indentation of planning lines
	// and drawers on export.
	DontIndent   bool   `yaml:"dont_indent,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	for _, kw := range c.DefaultTodoKeywords {
		if kw == "" {
			return fmt.Errorf("default_todo_keywords must not contain empty entries")
		}
		if strings.ContainsAny(kw, " \t|") {
			return fmt.Errorf("invalid todo keyword %q: whitespace and | are not allowed", kw)
		}
	}

	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q: must be table, json or plain", c.OutputFormat)
	}

	return nil
}

// Keywords returns the configured default TODO keywords, falling back
// to the built-in TODO/DONE pair.
func (c *Config) Keywords() []string {
	if len(c.DefaultTodoKeywords) == 0 {
		return []string{"TODO", "DONE"}
	}
	return c.DefaultTodoKeywords
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if kws := os.Getenv("ORGC_TODO_KEYWORDS"); kws != "" {
		c.DefaultTodoKeywords = strings.Fields(kws)
	}
	if v := os.Getenv("ORGC_DONT_INDENT"); v != "" {
		c.DontIndent = v == "1" || strings.EqualFold(v, "true")
	}
	if format := os.Getenv("ORGC_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "orgc", "config.yml")
	}

	// Fall back to ~/.config/orgc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".orgc", "config.yml")
	}

	return filepath.Join(home, ".config", "orgc", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file yields the zero config so orgc works without any setup.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
