// Package config loads service configuration from an optional TOML file
// with CALC_-prefixed environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	History HistoryConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string
}

// HistoryConfig holds evaluation-tape settings.
type HistoryConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from file and env. The file is looked up at
// $CALC_CONFIG, falling back to ~/.config/deskcalc/config.toml; a missing
// file is not an error. Env overrides use the CALC_ prefix, e.g.
// CALC_SERVER_ADDR or CALC_HISTORY_PATH.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "deskcalc", "history.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "deskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
