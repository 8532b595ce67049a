package config

import (
	"gopkg.in/yaml.v3"

	"github.com/drolfe/shell-prompt/internal/errors"
)

// displayConfig is the human-readable shape printed by `shell-prompt config`.
type displayConfig struct {
	Path       string      `yaml:"path"`
	Exists     bool        `yaml:"exists"`
	GitTimeout string      `yaml:"git_timeout"`
	Bookmarks  []PathAlias `yaml:"bookmarks"`
	Servers    []PathAlias `yaml:"servers"`
}

// MarshalYAML renders the effective configuration for display.
func MarshalYAML(cfg *Config, path string, exists bool) ([]byte, error) {
	out, err := yaml.Marshal(displayConfig{
		Path:       path,
		Exists:     exists,
		GitTimeout: cfg.GitTimeout.String(),
		Bookmarks:  cfg.Bookmarks,
		Servers:    cfg.Servers,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to format config", "")
	}
	return out, nil
}
