// Package config loads application configuration from environment
// variables.  cmd/server loads a .env file first via godotenv, so
// values can come from either source.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable; strings for identifiers and
// secrets, ints for durations and costs.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing

	// ReservationStore selects the engine backend: "memory" or "file".
	ReservationStore string
	// DirectoryStore selects where rooms and users live: "memory",
	// "file" or "mysql".
	DirectoryStore string
	// DataDir is where the file-backed stores keep their JSON files.
	DataDir string

	// MySQL settings, only read when DirectoryStore is "mysql".
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
}

// Load reads the configuration.  Required variables are enforced by
// must(); missing values exit with a fatal log message so a
// misconfigured process never half-starts.
func Load() Config {
	cfg := Config{
		Env:              env("APP_ENV", "dev"),
		Port:             env("APP_PORT", "8080"),
		JWTSecret:        must("JWT_SECRET"),
		AccessTTLMin:     envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays:   envInt("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:       envInt("BCRYPT_COST", 10),
		ReservationStore: env("RESERVATION_STORE", "file"),
		DirectoryStore:   env("DIRECTORY_STORE", "file"),
		DataDir:          env("DATA_DIR", "data"),
	}
	if cfg.DirectoryStore == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// env retrieves an optional variable with a default.
func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like env() for integer values; a malformed value exits.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
