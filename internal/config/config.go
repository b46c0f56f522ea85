// Package config resolves tripweaver settings from (in increasing priority)
// defaults, an optional .tripweaver.yaml and TRIPWEAVER_* environment variables.
// Command-line flags are layered on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TRIPWEAVER"
	ConfigName = ".tripweaver" // .yaml is implicit

	// EnvConfigPath adds a directory to the config file search path.
	EnvConfigPath = "TRIPWEAVER_CONFIG_PATH"

	DefaultDir = "~/.tripweaver"
)

const (
	KeyDir       = "dir"
	KeyBackend   = "backend"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyNotify    = "notify"
	KeyFormat    = "format"
)

type Config struct {
	// Dir holds the sqlite database / diskv directory and is the default
	// export destination. Always absolute-or-relative, never "~"-prefixed.
	Dir string

	// Backend is sqlite, diskv or memory.
	Backend string

	LogLevel  string
	LogFormat string

	// Notify is terminal, log or off.
	Notify string

	// Format is the CLI output format: json or table.
	Format string

	// File is the config file that was read, if any.
	File string
}

// Load reads configuration. A missing config file is not an error; an
// unreadable or invalid one is.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDir, DefaultDir)
	v.SetDefault(KeyBackend, "sqlite")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyNotify, "terminal")
	v.SetDefault(KeyFormat, "table")

	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	dir, err := ExpandDir(v.GetString(KeyDir))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Dir:       dir,
		Backend:   strings.TrimSpace(v.GetString(KeyBackend)),
		LogLevel:  strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFormat: strings.TrimSpace(v.GetString(KeyLogFormat)),
		Notify:    strings.TrimSpace(v.GetString(KeyNotify)),
		Format:    strings.TrimSpace(v.GetString(KeyFormat)),
		File:      v.ConfigFileUsed(),
	}, nil
}

// ExpandDir resolves a leading "~" and cleans the path.
func ExpandDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("config: dir is empty")
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", dir, err)
	}
	return filepath.Clean(expanded), nil
}
