// Package config provides configuration for applications embedding the
// Slack client and for the slack-cli command.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (SLACK_ prefix)
//  4. File reference resolution (token_file)
//  5. Validation
package config

import "time"

// Config holds the client settings.
type Config struct {
	// Token is the instance-level auth token. Optional: individual calls
	// can carry their own token.
	Token string `yaml:"token"`

	// TokenFile points at a file whose trimmed contents become Token.
	TokenFile string `yaml:"token_file"`

	// BaseURL is the Web API endpoint prefix. default: https://slack.com/api/
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single HTTP exchange. default: 30s
	Timeout time.Duration `yaml:"timeout"`

	// Metrics enables Prometheus instrumentation of the transport.
	// default: false
	Metrics bool `yaml:"metrics"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL: "https://slack.com/api/",
		Timeout: 30 * time.Second,
	}
}
