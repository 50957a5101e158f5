package config

import (
	"fmt"
	"strings"
)

// validLogLevels are the log levels accepted in logging.level.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration holds usable values.
// It returns an error describing the first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Git.Binary) == "" {
		return fmt.Errorf("git.binary cannot be empty")
	}

	if cfg.Command.TimeoutSeconds < 0 {
		return fmt.Errorf("command.timeout_seconds cannot be negative: %d", cfg.Command.TimeoutSeconds)
	}

	if strings.TrimSpace(cfg.Search.DefaultGlob) == "" {
		return fmt.Errorf("search.default_glob cannot be empty")
	}

	level := strings.ToLower(cfg.Logging.Level)
	if !validLogLevels[level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error: got %q", cfg.Logging.Level)
	}

	return nil
}
