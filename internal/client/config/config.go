package config

import "time"

// Config holds runtime settings for the asset console.
//
// Fields:
//   - BaseURL: backend root, the API version segment is appended to it.
//   - APIVersion: versioned path prefix of every resource ("v1").
//   - RequestTimeout: upper bound for a single HTTP exchange.
//   - StorageDSN: SQLite database holding the persisted session slot.
//   - DownloadDir: where exported spreadsheets are written.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	BaseURL        string
	APIVersion     string
	RequestTimeout time.Duration
	StorageDSN     string
	DownloadDir    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000/api"
	c.APIVersion = "v1"
	c.RequestTimeout = 15 * time.Second
	c.StorageDSN = "console.db"
	c.DownloadDir = "downloads"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
