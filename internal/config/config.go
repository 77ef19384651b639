package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Razorpay    RazorpayConfig
	Shiprocket  ShiprocketConfig
	CORS        CORSConfig
	HTTPTimeout time.Duration
	LogLevel    string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

type ShiprocketConfig struct {
	Email          string
	Password       string
	BaseURL        string
	PickupLocation string
	TokenTTL       time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("SHIPROCKET_TOKEN_TTL", "8h")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	httpTimeout, err := getDurationOrViper("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getDurationOrViper("SHIPROCKET_TOKEN_TTL", 8*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Razorpay: RazorpayConfig{
			KeyID:     getEnvOrViper("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnvOrViper("RAZORPAY_KEY_SECRET", ""),
			BaseURL:   getEnvOrViper("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		},
		Shiprocket: ShiprocketConfig{
			Email:          getEnvOrViper("SHIPROCKET_EMAIL", ""),
			Password:       getEnvOrViper("SHIPROCKET_PASSWORD", ""),
			BaseURL:        getEnvOrViper("SHIPROCKET_BASE_URL", "https://apiv2.shiprocket.in"),
			PickupLocation: getEnvOrViper("SHIPROCKET_PICKUP_LOCATION", "Primary"),
			TokenTTL:       tokenTTL,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvOrViper("ALLOWED_ORIGINS", "")),
		},
		HTTPTimeout: httpTimeout,
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Razorpay.KeyID == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID is required")
	}
	if cfg.Razorpay.KeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	if cfg.Shiprocket.Email == "" {
		return nil, fmt.Errorf("SHIPROCKET_EMAIL is required")
	}
	if cfg.Shiprocket.Password == "" {
		return nil, fmt.Errorf("SHIPROCKET_PASSWORD is required")
	}
	if cfg.Shiprocket.TokenTTL <= 0 {
		return nil, fmt.Errorf("SHIPROCKET_TOKEN_TTL must be positive")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getDurationOrViper(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvOrViper(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// splitList parses a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
