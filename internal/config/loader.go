package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/tile2048.yaml"

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.tile2048/config.yaml -> ./configs/tile2048.yaml -> embedded default
// Values missing from the chosen file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, loaded.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryLoad reads path over the defaults. Unreadable or unparsable files are skipped.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tile2048", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
