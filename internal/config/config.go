// Package config manages sheetops configuration from file and environment.
// Configuration is advisory (colors, watch debounce); action semantics
// never depend on it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Output struct {
		Color bool `mapstructure:"color"`
	} `mapstructure:"output"`
	Watch struct {
		DebounceMS int `mapstructure:"debounce_ms"`
	} `mapstructure:"watch"`
}

func setDefaults() {
	viper.SetDefault("output.color", true)
	viper.SetDefault("watch.debounce_ms", 500)
}

// Load reads configuration from ~/.sheetops/config.yaml and SHEETOPS_*
// environment variables. A missing config file is not an error; defaults
// always apply.
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir())

	setDefaults()

	viper.SetEnvPrefix("SHEETOPS")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		// Fall back to pure defaults on a corrupt file
		fresh := &Config{}
		fresh.Output.Color = true
		fresh.Watch.DebounceMS = 500
		return fresh
	}
	return cfg
}

// Init writes a config file with the current defaults, creating the
// config directory if needed.
func Init() error {
	setDefaults()
	dir := configDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	if err := viper.WriteConfigAs(ConfigPath()); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// Set stores a configuration value and persists the file.
func Set(key, value string) error {
	Load()
	if !viper.IsSet(key) {
		return fmt.Errorf("unknown configuration key %q", key)
	}
	viper.Set(key, value)
	if err := os.MkdirAll(configDir(), 0755); err != nil {
		return err
	}
	if err := viper.WriteConfigAs(ConfigPath()); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// Get returns a configuration value as a string.
func Get(key string) string {
	Load()
	return viper.GetString(key)
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sheetops"
	}
	return filepath.Join(home, ".sheetops")
}
