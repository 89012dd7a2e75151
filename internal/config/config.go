package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	BaseURL     string `mapstructure:"BASE_URL"`
	Environment string `mapstructure:"GO_ENV"`

	// Shortcode generation
	CodeLength int `mapstructure:"CODE_LENGTH"`

	// Geo lookup budget for provider-backed resolvers, in milliseconds.
	GeoTimeoutMS int `mapstructure:"GEO_TIMEOUT_MS"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("BASE_URL", "http://localhost:8000")
	viper.SetDefault("GO_ENV", "development")
	viper.SetDefault("CODE_LENGTH", 6)
	viper.SetDefault("GEO_TIMEOUT_MS", 500)

	// Missing .env is fine; environment variables still apply.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
