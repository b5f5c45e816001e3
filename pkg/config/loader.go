package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the compiled-in default configuration.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.roadracer/config.yaml -> ./configs/roadracer.yaml -> embedded default.
// A broken embedded default is an error.
// Files only need to carry the fields they override. The second return value
// names the source that was used.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "roadracer.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return loadEmbedded(defaultYAML)
}

func loadEmbedded(data []byte) (Config, string, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, "", fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadracer", "config.yaml")
}
