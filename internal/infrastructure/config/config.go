package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	OTLP   OTLPConfig
	Log    LogConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	SeedCatalog     bool
}

type OTLPConfig struct {
	Endpoint    string
	ServiceName string
	Environment string
	Enabled     bool
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret     string
	Issuer        string
	Audience      string
	TokenTTL      time.Duration
	DemoEmail     string
	DemoPassword  string
	MaxAttempts   int
	LockoutWindow time.Duration
}

// LoadConfig loads configuration from environment variables. Values found in
// a .env file in the working directory are loaded first without overriding
// variables that are already set.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
			SeedCatalog:     getEnvBool("SEED_CATALOG", true),
		},
		OTLP: OTLPConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "storefront-api"),
			Environment: getEnv("OTEL_ENVIRONMENT", "development"),
			Enabled:     getEnvBool("OTEL_EXPORT_ENABLED", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("AUTH_JWT_SECRET", "change-me"),
			Issuer:        getEnv("AUTH_ISSUER", "storefront-api"),
			Audience:      getEnv("AUTH_AUDIENCE", "storefront-app"),
			TokenTTL:      getEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
			DemoEmail:     getEnv("AUTH_DEMO_EMAIL", "demo@storefront.dev"),
			DemoPassword:  getEnv("AUTH_DEMO_PASSWORD", "demo1234"),
			MaxAttempts:   getEnvInt("AUTH_MAX_ATTEMPTS", 5),
			LockoutWindow: getEnvDuration("AUTH_LOCKOUT_WINDOW", 15*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
