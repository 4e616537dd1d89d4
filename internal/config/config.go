// Package config defines the service configuration and how it is loaded.
package config

import "errors"

// Sentinel errors for callers using errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output from text to JSON.
	LogJSON bool `koanf:"log_json"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// MetricsEnabled exposes Prometheus metrics on MetricsPath.
	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsPath    string `koanf:"metrics_path"`

	// SiteTitle overrides the document title.
	SiteTitle string `koanf:"site_title"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Addr:           ":8080",
		LogLevel:       "info",
		GinMode:        "release",
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}
}
