package web

import "github.com/addr-canon/internal/config"

// Config represents the web server configuration.
type Config struct {
	Host  string
	Port  int
	Debug bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:  "0.0.0.0",
		Port:  8080,
		Debug: false,
	}
}

// ConfigFromEnv builds the configuration from ADDR_CANON_* environment
// variables, falling back to defaults.
func ConfigFromEnv() *Config {
	defaults := DefaultConfig()
	return &Config{
		Host:  config.GetEnv("ADDR_CANON_HOST", defaults.Host),
		Port:  config.GetEnvInt("ADDR_CANON_PORT", defaults.Port),
		Debug: config.GetEnvBool("ADDR_CANON_DEBUG", defaults.Debug),
	}
}
