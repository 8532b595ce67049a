package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drolfe/shell-prompt/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory under $HOME holding the config file.
	ConfigDir = ".config"
	// ConfigFileName is the config file name. The content is JSON.
	ConfigFileName = "shell_prompt.conf"
	// EnvPrefix prefixes environment overrides, e.g. SHELL_PROMPT_GIT_TIMEOUT.
	EnvPrefix = "SHELL_PROMPT"
)

// DefaultPath returns ${HOME}/.config/shell_prompt.conf.
func DefaultPath(home string) string {
	return filepath.Join(home, ConfigDir, ConfigFileName)
}

// Load reads config from the specified path. The file must exist.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Create it or drop the --config flag to use "+filepath.Join("~", ConfigDir, ConfigFileName))
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			`Check the file is valid JSON like {"bookmarks": [], "servers": []}`)
	}

	return parseConfig(v, path)
}

// LoadOrDefault loads config from path, or returns defaults if the file does not exist.
// Environment overrides apply either way.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return parseConfig(newViper(), path)
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot access config file: "+path,
			"Check file permissions")
	}
	return Load(path)
}

// newViper returns a viper instance with defaults and env bindings applied.
func newViper() *viper.Viper {
	v := viper.New()
	// The .conf extension tells viper nothing about the format.
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	_ = v.BindEnv("git_timeout")

	v.SetDefault("bookmarks", []interface{}{})
	v.SetDefault("servers", []interface{}{})
	v.SetDefault("git_timeout", DefaultGitTimeout.String())
	return v
}

// parseConfig converts viper config to our Config struct.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"bookmarks and servers must be lists of [path, name] pairs in "+path)
	}

	bookmarks, err := toAliases("bookmarks", raw.Bookmarks, path)
	if err != nil {
		return nil, err
	}
	servers, err := toAliases("servers", raw.Servers, path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Bookmarks = bookmarks
	cfg.Servers = servers
	if raw.GitTimeout > 0 {
		cfg.GitTimeout = raw.GitTimeout
	}
	return cfg, nil
}

func toAliases(key string, pairs [][]string, path string) ([]PathAlias, error) {
	aliases := make([]PathAlias, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("%s[%d] has %d elements, expected 2", key, i, len(pair)),
				"Each entry in "+path+" must look like [\"/path/prefix\", \"name\"]")
		}
		aliases = append(aliases, PathAlias{Pattern: pair[0], Name: pair[1]})
	}
	return aliases, nil
}
