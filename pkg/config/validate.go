package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for valid values. Returns an error
// naming the offending field on failure.
func (c *Config) Validate() error {
	var errs []error

	if c.BaseURL == "" {
		errs = append(errs, fmt.Errorf("base_url is required"))
	} else if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("base_url must start with http:// or https://, got %q", c.BaseURL))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be >= 0, got %v", c.Timeout))
	}

	return errors.Join(errs...)
}
