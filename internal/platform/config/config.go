// Package config loads the service configuration from the environment,
// with optional .env support for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the service.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// RedisAddr is the host:port of the Redis instance used for sessions.
	// Empty disables Redis and falls back to the database-backed session store.
	RedisAddr string

	// RedisPassword is the Redis AUTH password, if any.
	RedisPassword string

	// MinSenhaLen is the minimum accepted password length on sign-up.
	MinSenhaLen int

	// BcryptCost is the bcrypt cost factor for password hashing.
	BcryptCost int
}

// Load reads the configuration from the environment. A missing .env file is
// not an error; real environments set variables directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	redisAddr := ""
	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}

	return &Config{
		Port:          getEnv("PORT", "4000"),
		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MinSenhaLen:   getEnvAsInt("MIN_SENHA_LEN", 3),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
	}
}

// getEnv returns the environment variable value or the default when unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as int or the default when
// unset or unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
