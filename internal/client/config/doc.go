// Package config loads runtime configuration for the asset console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via flags: -c or -config. JSON by
//     default, YAML when the file ends in .yaml or .yml.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   local storage DSN
//	-o string   download directory
//	-l string   log level
//
// # File schema
//
//	{
//	  "base_url": "http://127.0.0.1:5000/api",
//	  "api_version": "v1",
//	  "request_timeout": "15s",
//	  "storage_dsn": "console.db",
//	  "download_dir": "downloads",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
