package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/courtside/courtside/src/paths"
)

// configFilePath returns the default config file location.
func configFilePath() string {
	return paths.ConfigFile()
}

// WriteDefault writes the built-in configuration as YAML to path,
// refusing to overwrite an existing file. An empty path selects the
// default location. Returns the path written.
func WriteDefault(path string) (string, error) {
	if path == "" {
		path = configFilePath()
	}
	path = paths.Expand(path)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("config: marshal defaults: %w", err)
	}

	if err := paths.EnsureParent(path); err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
