package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, SLACK_CONFIG env, ./slack.yaml, /etc/slack/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (token_file)
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. SLACK_CONFIG environment variable
// 3. ./slack.yaml in the current directory
// 4. /etc/slack/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("SLACK_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"slack.yaml",
		"/etc/slack/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps SLACK_* environment variables to config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLACK_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("SLACK_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("SLACK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SLACK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("SLACK_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics = b
		}
	}
}

// resolveFileReferences reads token_file and populates token when token
// itself is unset.
func resolveFileReferences(cfg *Config) error {
	if cfg.TokenFile != "" && cfg.Token == "" {
		val, err := readSecretFile(cfg.TokenFile)
		if err != nil {
			return fmt.Errorf("token_file: %w", err)
		}
		cfg.Token = val
	}
	return nil
}

// readSecretFile reads a file and returns its contents with surrounding
// whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
