package config

import "time"

// Config represents the root configuration structure for prelude
type Config struct {
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Command CommandConfig `mapstructure:"command" yaml:"command"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GitConfig contains git invocation configuration
type GitConfig struct {
	// Binary is the git executable to invoke. Defaults to "git" (resolved via PATH).
	Binary string `mapstructure:"binary" yaml:"binary"`
}

// CommandConfig contains external command execution configuration
type CommandConfig struct {
	// TimeoutSeconds bounds external command execution. Zero means no bound.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the configured command timeout as a duration.
// A zero or negative setting yields zero (no timeout).
func (c CommandConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SearchConfig contains search and tree-walk configuration
type SearchConfig struct {
	// DefaultGlob is the glob applied when a tree-wide operation is given none.
	DefaultGlob string `mapstructure:"default_glob" yaml:"default_glob"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Console  bool   `mapstructure:"console" yaml:"console"`
	FilePath string `mapstructure:"file_path" yaml:"file_path"`
}
