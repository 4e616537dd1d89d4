package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix = "PORTFOLIO_"
	EnvFile   = "PORTFOLIO_CONFIG"
	EnvPort   = "PORT"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (New)
//  2. YAML file named by PORTFOLIO_CONFIG
//  3. PORTFOLIO_* environment variables
//  4. PORT, when neither the file nor PORTFOLIO_ADDR sets addr (hosting
//     platforms set it)
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// PORTFOLIO_LOG_LEVEL -> log_level; keys stay flat.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if port := os.Getenv(EnvPort); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: gin_mode %q", ErrInvalidConfig, c.GinMode)
	}
	if c.MetricsEnabled {
		if err := checkMetricsPath(c.MetricsPath); err != nil {
			return err
		}
	}
	return nil
}

// Routes the HTTP host registers for itself. The metrics endpoint must not
// land on one of them.
var (
	reservedPaths    = []string{"/", "/healthz", "/contact"}
	reservedPrefixes = []string{"/static"}
)

func checkMetricsPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: metrics_path must start with /", ErrInvalidConfig)
	}
	if strings.ContainsAny(p, ":*") {
		return fmt.Errorf("%w: metrics_path %q must not contain route parameters", ErrInvalidConfig, p)
	}
	for _, r := range reservedPaths {
		if p == r {
			return fmt.Errorf("%w: metrics_path %q is already served", ErrInvalidConfig, p)
		}
	}
	for _, r := range reservedPrefixes {
		if p == r || strings.HasPrefix(p, r+"/") {
			return fmt.Errorf("%w: metrics_path %q is under %s", ErrInvalidConfig, p, r)
		}
	}
	return nil
}
