package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, without clobbering variables already
// present in the process environment; a missing file is not an error.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address
//	DATABASE_DSN    PostgreSQL DSN; empty selects the SQLite fallback
//	SQLITE_PATH     path of the fallback SQLite file
//	SESSION_SECRET  cookie signing key
//	SESSION_COOKIE  session cookie name
//	SESSION_TTL     session lifetime in minutes
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SQLITE_PATH"); ok {
		config.SQLitePath = v
	}
	if v, ok := os.LookupEnv("SESSION_SECRET"); ok {
		config.SessionSecret = v
	}
	if v, ok := os.LookupEnv("SESSION_COOKIE"); ok {
		config.SessionCookie = v
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.SessionTTL = time.Duration(minutes) * time.Minute
		}
	}
}
