package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for both the TUI and the server.
type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"api"`
	Server struct {
		Addr         string `mapstructure:"addr"`
		DatabasePath string `mapstructure:"database_path"`
	} `mapstructure:"server"`
	Log struct {
		File string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// Dir returns the promptdeck config directory (~/.config/promptdeck).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "promptdeck"), nil
}

// Load reads config.yaml from the config directory, applying defaults and
// PROMPTDECK_* environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("api.base_url", "http://127.0.0.1:8750")
	v.SetDefault("server.addr", ":8750")
	v.SetDefault("server.database_path", filepath.Join(dir, "prompts.db"))
	v.SetDefault("log.file", filepath.Join(dir, "promptdeck.log"))

	v.SetEnvPrefix("PROMPTDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
