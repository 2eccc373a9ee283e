package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the analytics API.
type Config struct {
	AppName     string
	AppPort     string
	MongoURL    string
	DBName      string
	CORSOrigins string
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}
	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "LMS Analytics Dashboard API")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "lms_analytics")
	v.SetDefault("CORS_ORIGINS", "*")

	cfg := Config{
		AppName:     v.GetString("APP_NAME"),
		AppPort:     v.GetString("PORT"),
		MongoURL:    v.GetString("MONGO_URL"),
		DBName:      v.GetString("DB_NAME"),
		CORSOrigins: v.GetString("CORS_ORIGINS"),
	}

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL must be provided")
	}

	return cfg, nil
}
