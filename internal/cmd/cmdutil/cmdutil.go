// Package cmdutil provides small helpers shared by orgc commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/orgtools/org-cli/internal/config"
	"github.com/orgtools/org-cli/pkg/org"
)

// ReadSource reads the Org source from path, or from stdin when path
// is "-".
func ReadSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// ParseFile reads and parses an Org file using the configured default
// TODO keywords.
func ParseFile(path string, cfg *config.Config) (*org.Document, error) {
	text, err := ReadSource(path)
	if err != nil {
		return nil, err
	}

	return org.ParseWithOptions(text, org.ParseOptions{
		DefaultTodoKeywords: cfg.Keywords(),
	}), nil
}

// LoadConfig loads the orgc config, never failing on a missing file.
func LoadConfig() *config.Config {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return &config.Config{}
	}
	return cfg
}
