package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/beliefnet/beliefnet/internal/inference"
	"github.com/beliefnet/beliefnet/internal/validator"
)

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optionally read from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/beliefnet")

	// Ignore error if config file not found
	_ = v.ReadInConfig()

	var cfg Config

	// Engine
	cfg.Engine.MaxStates = v.GetUint64("engine_max_states")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	if err := validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Engine defaults
	v.SetDefault("engine_max_states", inference.DefaultMaxStates)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}
