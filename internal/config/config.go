package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load sets default values, binds B2BUILDER_* environment variables and, when
// configFile is not empty, reads it on top of the defaults.
func Load(configFile string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("world.gravityX", 0.0)
	viper.SetDefault("world.gravityY", -10.0)

	viper.SetDefault("circleSegments", 16)
	viper.SetDefault("watch.debounce", "100ms")

	viper.SetEnvPrefix("B2BUILDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
