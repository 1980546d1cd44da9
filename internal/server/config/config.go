// Package config handles configuration for the server: defaults, an
// optional .env / environment overlay, and command-line flags, applied in
// that order.
package config

import "time"

// Config holds runtime settings for the Rango Amigo server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). When empty the server falls back
//     to a local SQLite file at SQLitePath.
//   - SQLitePath: path of the file-backed fallback store.
//   - SessionSecret: key used to sign the session cookie. Do not ship the
//     development default.
//   - SessionCookie: name of the session cookie.
//   - SessionTTL: absolute lifetime of a server-side session row.
type Config struct {
	Address       string
	DatabaseDSN   string
	SQLitePath    string
	SessionSecret string
	SessionCookie string
	SessionTTL    time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: insecure for production, override via env or flags.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.DatabaseDSN = ""
	c.SQLitePath = "rango.db"
	c.SessionSecret = "dev-session-secret"
	c.SessionCookie = "rango_session"
	c.SessionTTL = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (with an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
