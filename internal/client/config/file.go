package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
	"github.com/dmitrijs2005/assetkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling.
// It relies on timex.Duration so files can specify the timeout either as a
// string like "15s" or as integer nanoseconds. Empty values leave the
// corresponding Config field untouched.
type FileConfig struct {
	BaseURL        string         `json:"base_url" yaml:"base_url"`
	APIVersion     string         `json:"api_version" yaml:"api_version"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StorageDSN     string         `json:"storage_dsn" yaml:"storage_dsn"`
	DownloadDir    string         `json:"download_dir" yaml:"download_dir"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values loaded from a config file whose path
// comes from the -c or -config flags. Files ending in .yaml or .yml are read
// as YAML, anything else as JSON. Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	}

	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.APIVersion != "" {
		cfg.APIVersion = fc.APIVersion
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.StorageDSN != "" {
		cfg.StorageDSN = fc.StorageDSN
	}
	if fc.DownloadDir != "" {
		cfg.DownloadDir = fc.DownloadDir
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
