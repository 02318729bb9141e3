// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SessionTokenExpiration is the duration after which a session token expires.
	SessionTokenExpiration time.Duration

	// LockoutMaxAttempts is the maximum number of failed login attempts before a lockout.
	LockoutMaxAttempts int
	// LockoutDuration is the duration for which an account is locked out after maximum attempts.
	LockoutDuration time.Duration

	// PasswordHashAlgorithm selects the password hashing backend ("bcrypt" or "argon2id").
	PasswordHashAlgorithm string
	// PasswordHashBcryptCost is the bcrypt work factor used when the bcrypt backend is selected.
	PasswordHashBcryptCost int

	// RateLimitLoginEnabled indicates whether IP-based rate limiting for the login endpoint is enabled.
	RateLimitLoginEnabled bool
	// RateLimitLoginRequestsPerSec is the number of requests allowed per second per IP on the login endpoint.
	RateLimitLoginRequestsPerSec float64
	// RateLimitLoginBurst is the burst size for the login endpoint rate limiting.
	RateLimitLoginBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Sessions
		SessionTokenExpiration: env.GetDuration("SESSION_TOKEN_EXPIRATION_SECONDS", 3600, time.Second),

		// Account Lockout
		LockoutMaxAttempts: env.GetInt("LOCKOUT_MAX_ATTEMPTS", 3),
		LockoutDuration:    env.GetDuration("LOCKOUT_DURATION_MINUTES", 15, time.Minute),

		// Password hashing
		PasswordHashAlgorithm:  env.GetString("PASSWORD_HASH_ALGORITHM", "bcrypt"),
		PasswordHashBcryptCost: env.GetInt("PASSWORD_HASH_BCRYPT_COST", 12),

		// Rate Limiting for Login Endpoint (IP-based, unauthenticated)
		RateLimitLoginEnabled:        env.GetBool("RATE_LIMIT_LOGIN_ENABLED", false),
		RateLimitLoginRequestsPerSec: env.GetFloat64("RATE_LIMIT_LOGIN_REQUESTS_PER_SEC", 5.0),
		RateLimitLoginBurst:          env.GetInt("RATE_LIMIT_LOGIN_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "accounts"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			return
		}
		dir = parent
	}
}
