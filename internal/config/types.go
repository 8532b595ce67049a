package config

import "time"

// DefaultGitTimeout bounds how long the prompt waits for git status.
const DefaultGitTimeout = 2 * time.Second

// Config represents the ~/.config/shell_prompt.conf file.
type Config struct {
	// Bookmarks are tried before servers, in file order.
	Bookmarks []PathAlias `yaml:"bookmarks"`

	// Servers are tried after bookmarks, in file order.
	Servers []PathAlias `yaml:"servers"`

	// GitTimeout is how long to wait for git status before showing it as unknown.
	GitTimeout time.Duration `yaml:"git_timeout"`
}

// PathAlias maps a path prefix to a short display name.
// Pattern supports {USER} and {HOME} placeholders.
type PathAlias struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`
}

// rawConfig mirrors the on-disk JSON, where each alias is a two-element array.
type rawConfig struct {
	Bookmarks  [][]string    `mapstructure:"bookmarks"`
	Servers    [][]string    `mapstructure:"servers"`
	GitTimeout time.Duration `mapstructure:"git_timeout"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Bookmarks:  []PathAlias{},
		Servers:    []PathAlias{},
		GitTimeout: DefaultGitTimeout,
	}
}
