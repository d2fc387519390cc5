package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Mongo offer store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis result cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Generative model for the synthetic offer tier.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Static company hotel rate book (JSON). Empty uses the built-in defaults.
	CompanyRatesPath string `mapstructure:"COMPANY_RATES_PATH"`

	// Pipeline tuning.
	DefaultCurrency   string `mapstructure:"DEFAULT_CURRENCY"`
	SearchTimeoutSecs int    `mapstructure:"SEARCH_TIMEOUT_SECS"`
	TierDelayMillis   int    `mapstructure:"TIER_DELAY_MS"`
	CacheTTLSecs      int    `mapstructure:"CACHE_TTL_SECS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripdesk")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("COMPANY_RATES_PATH", "")
	viper.SetDefault("DEFAULT_CURRENCY", "EGP")
	viper.SetDefault("SEARCH_TIMEOUT_SECS", 90)
	viper.SetDefault("TIER_DELAY_MS", 250)
	viper.SetDefault("CACHE_TTL_SECS", 600)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
