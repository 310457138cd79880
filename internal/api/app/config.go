package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fluxfinance/fluxfinance/internal/api/service"
)

type Config struct {
	JWTSecret string        // Optional: HS256 signing secret; a random one is generated when unset
	Issuer    string        // Optional: issuer claim for tokens (default: fluxfinance)
	TokenTTL  time.Duration // Optional: bearer token lifetime (default: 1h)

	StorageDriver string // Optional: storage driver (memory, sqlite) (default: memory)
	DatabaseFile  string // Optional: path to SQLite database file (default: ./fluxfinance.db)
	SeedUsers     string // Optional: comma-separated email:password:name logins
	SeedSample    bool   // Optional: insert sample invoices into an empty store (default: true)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A missing .env file is fine, env vars alone are enough.
	_ = godotenv.Load()

	return Config{
		JWTSecret: os.Getenv("FLUX_JWT_SECRET"),
		Issuer:    getEnvOrDefault("FLUX_ISSUER", "fluxfinance"),
		TokenTTL:  getEnvDurationOrDefault("FLUX_TOKEN_TTL", time.Hour),

		StorageDriver: getEnvOrDefault("FLUX_STORAGE_DRIVER", "memory"),
		DatabaseFile:  getEnvOrDefault("FLUX_DATABASE_FILE", "fluxfinance.db"),
		SeedUsers: getEnvOrDefault(
			"FLUX_SEED_USERS",
			"user@example.com:correctpassword:Test User",
		),
		SeedSample: getEnvBoolOrDefault("FLUX_SEED_SAMPLE_DATA", true),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// ParseSeedUsers splits the SeedUsers value into login seeds. Each entry is
// email:password:name; the name may itself contain colons.
func (c Config) ParseSeedUsers() []service.SeedUser {
	var seeds []service.SeedUser
	for _, entry := range strings.Split(c.SeedUsers, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		seed := service.SeedUser{Email: parts[0]}
		if len(parts) > 1 {
			seed.Password = parts[1]
		}
		if len(parts) > 2 {
			seed.Name = parts[2]
		}
		seeds = append(seeds, seed)
	}
	return seeds
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
