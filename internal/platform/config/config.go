package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	LogLevel          string
	SchedulerInterval time.Duration
	DolarAPIURL       string
	FetchTimeout      time.Duration
	PoolMinConns      int32
	PoolMaxConns      int32
	RateLimit         string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. DATABASE_URL overrides the individual POSTGRES_* settings.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5433")
	viper.SetDefault("POSTGRES_DB", "wallbitdb")
	viper.SetDefault("POSTGRES_USER", "wallbit")
	viper.SetDefault("POSTGRES_PASSWORD", "wallbitpass")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SCHEDULER_INTERVAL_HOURS", 2)
	viper.SetDefault("DOLAR_API_URL", "https://dolarapi.com/v1/dolares")
	viper.SetDefault("FETCH_TIMEOUT", "10s")
	viper.SetDefault("POOL_MIN_SIZE", 2)
	viper.SetDefault("POOL_MAX_SIZE", 10)
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			viper.GetString("POSTGRES_USER"),
			viper.GetString("POSTGRES_PASSWORD"),
			viper.GetString("POSTGRES_HOST"),
			viper.GetString("POSTGRES_PORT"),
			viper.GetString("POSTGRES_DB"),
		)
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	intervalHours := viper.GetInt("SCHEDULER_INTERVAL_HOURS")
	if intervalHours <= 0 {
		log.Printf("Warning: Invalid value for SCHEDULER_INTERVAL_HOURS (%d). Defaulting to 2.\n", intervalHours)
		intervalHours = 2
	}
	cfg.SchedulerInterval = time.Duration(intervalHours) * time.Hour

	cfg.DolarAPIURL = viper.GetString("DOLAR_API_URL")

	fetchTimeoutStr := viper.GetString("FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fetchTimeoutStr, fetchTimeout)
	}
	cfg.FetchTimeout = fetchTimeout

	cfg.PoolMinConns = viper.GetInt32("POOL_MIN_SIZE")
	cfg.PoolMaxConns = viper.GetInt32("POOL_MAX_SIZE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
