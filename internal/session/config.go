package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config is the client configuration: where the backend lives and the pinned
// coordinates this workstation reports with each movement.
type Config struct {
	BaseURL  string `json:"base_url,omitempty"`
	Location string `json:"location,omitempty"`
}

// ConfigPath returns the path to the client config file.
func ConfigPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// ReadConfig loads the client config. Returns an empty config if the file
// does not exist.
func ReadConfig(homeDir string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteConfig persists the client config, creating the directory if needed.
func WriteConfig(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(homeDir), data, 0644)
}
