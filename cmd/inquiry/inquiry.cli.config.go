package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig holds defaults loaded from an optional YAML config file.
// Explicit flags always win over config values.
type cliConfig struct {
	Ledger string `yaml:"ledger"`
	Format string `yaml:"format"`
	Runner string `yaml:"runner"`
}

// loadCLIConfig reads and parses a YAML config file. An empty path yields
// an empty config.
func loadCLIConfig(path string) (*cliConfig, error) {
	cfg := &cliConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefault returns value, falling back to the config default when the
// flag was left unset.
func applyDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
