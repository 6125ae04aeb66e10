package types

import (
	"fmt"
	"slices"
)

// Log levels accepted by Config.LogLevel
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the configuration for the calculator
type Config struct {
	LogLevel string `json:"log_level,omitempty"`
}

// Validate checks that the configuration values are supported
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q, expected one of %v", c.LogLevel, LogLevels)
	}
	return nil
}
