package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Ledger
	// AmountCeiling is the maximum amount a single record may carry,
	// expressed in major currency units (rubles, not kopecks).
	AmountCeiling int64
	// CurrencySymbol is appended to formatted amounts.
	CurrencySymbol string
	// LocaleTag is a BCP 47 tag controlling digit grouping of formatted amounts.
	LocaleTag string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "kassa"),
		DBPassword: getEnv("DB_PASSWORD", "kassa"),
		DBName:     getEnv("DB_NAME", "kassa"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Ledger
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₽"),
		LocaleTag:      getEnv("LOCALE", "ru"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Parse the amount ceiling (major units)
	ceilingStr := getEnv("AMOUNT_CEILING", "9999999")
	ceiling, err := strconv.ParseInt(ceilingStr, 10, 64)
	if err != nil || ceiling <= 0 {
		log.Printf("Warning: invalid AMOUNT_CEILING value '%s', falling back to 9999999\n", ceilingStr)
		ceiling = 9999999
	}
	config.AmountCeiling = ceiling

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
