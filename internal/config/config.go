package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration (notification feed)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Nexodus API the admin console fronts
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	APITimeoutSec int    `mapstructure:"API_TIMEOUT_SEC"`

	// Caches
	IdentityCacheSize   int `mapstructure:"IDENTITY_CACHE_SIZE"`
	IdentityCacheTTLSec int `mapstructure:"IDENTITY_CACHE_TTL_SEC"`
	RecordCacheSize     int `mapstructure:"RECORD_CACHE_SIZE"`
	RecordCacheTTLSec   int `mapstructure:"RECORD_CACHE_TTL_SEC"`

	// Delivered notifications older than this are swept
	NotificationRetentionHours int `mapstructure:"NOTIFICATION_RETENTION_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS from the environment arrives as a comma separated string
	config.AllowedOrigins = splitList(strings.Join(config.AllowedOrigins, ","))

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "nexodus_admin")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("API_BASE_URL", "https://api.try.nexodus.127.0.0.1.nip.io")
	viper.SetDefault("API_TIMEOUT_SEC", 15)

	viper.SetDefault("IDENTITY_CACHE_SIZE", 1024)
	viper.SetDefault("IDENTITY_CACHE_TTL_SEC", 300)
	viper.SetDefault("RECORD_CACHE_SIZE", 256)
	viper.SetDefault("RECORD_CACHE_TTL_SEC", 30)

	viper.SetDefault("NOTIFICATION_RETENTION_HOURS", 24)

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(config.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", config.APIBaseURL)
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.APITimeoutSec <= 0 {
		return fmt.Errorf("API_TIMEOUT_SEC must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
