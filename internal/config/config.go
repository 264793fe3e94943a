// Package config holds runtime settings for launchboard and loads them from
// defaults, an optional JSON file, and command-line flags (in that order,
// later sources winning).
package config

import "time"

// Config holds runtime settings for the launchboard CLI.
//
// Fields:
//   - APIBaseURL: base URL of the launch data provider, without the
//     /v4 or /v5 version prefix.
//   - QueryLimit: maximum number of launches requested by a bulk query.
//   - DatabasePath: path of the local SQLite state database.
//   - TokenSecret: fixed shared secret the session tokens are minted under.
//   - RequestTimeout: HTTP timeout for provider requests; 0 disables it.
type Config struct {
	APIBaseURL     string
	QueryLimit     int
	DatabasePath   string
	TokenSecret    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.spacexdata.com"
	c.QueryLimit = 100
	c.DatabasePath = "launchboard.db"
	c.TokenSecret = "launchboard-local-secret"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
