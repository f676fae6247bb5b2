package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource          string        `mapstructure:"DB_SOURCE"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	LocationKey       string        `mapstructure:"LOCATION_KEY"`
	LocationTTL       time.Duration `mapstructure:"LOCATION_TTL"`
	CardWidthFraction float64       `mapstructure:"CARD_WIDTH_FRACTION"`
	GeohashPrecision  uint          `mapstructure:"GEOHASH_PRECISION"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LogPretty         bool          `mapstructure:"LOG_PRETTY"`
}

// LoadConfig reads app.env from path, then lets environment variables override it.
// A .env file in the working directory is loaded into the environment first when present.
func LoadConfig(path string) (config Config, err error) {
	if err = godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, fmt.Errorf("config: failed to load .env: %w", err)
		}
		err = nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOCATION_KEY", "userLocation")
	v.SetDefault("LOCATION_TTL", "720h")
	v.SetDefault("CARD_WIDTH_FRACTION", 0.8)
	v.SetDefault("GEOHASH_PRECISION", 7)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"DB_SOURCE", "REDIS_PASSWORD"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
