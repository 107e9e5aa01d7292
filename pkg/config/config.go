// Package config locates the data directory and the signed-in user from
// the .flowstate config file and FLOWSTATE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Path is the data directory holding every user's collections.
	Path string
	// User is the signed-in identity. Empty means signed out.
	User string
	// License is the optional client license key. Nothing locally checks
	// it; a hosted backend would.
	License string
}

// MarkerPath is where the last-opened day marker lives, inside the data
// directory so it travels with the data.
func (c *Config) MarkerPath() string {
	return filepath.Join(c.Path, "last_opened")
}

// Load reads .flowstate (yaml, current directory or FLOWSTATE_CONFIG_PATH)
// and the FLOWSTATE_PATH / FLOWSTATE_USER environment overrides. A missing
// config file is fine; a malformed one is not.
func Load() (*Config, error) {
	viper.SetDefault("path", "~/.flowstate.db")
	viper.SetConfigName(".flowstate")
	viper.SetEnvPrefix("FLOWSTATE")
	viper.AutomaticEnv()

	if override := os.Getenv("FLOWSTATE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expanding path: %w", err)
	}

	return &Config{
		Path:    path,
		User:    viper.GetString("user"),
		License: viper.GetString("license"),
	}, nil
}
