package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the isyctl tool.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Hub     HubConfig     `yaml:"hub"`
	Logging LoggingConfig `yaml:"logging"`
}

// HubConfig contains the hub connection settings.
type HubConfig struct {
	Host               string `yaml:"host"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	HTTPS              bool   `yaml:"https"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Timeout            int    `yaml:"timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SIMPLEISY_SECTION_KEY
// For example: SIMPLEISY_HUB_HOST, SIMPLEISY_HUB_PASSWORD
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// New returns a configuration populated from defaults and environment
// variables without validating it. Callers that merge further overrides
// (command-line flags) validate afterwards.
func New() *Config {
	cfg := defaultConfig()
	applyEnvOverrides(cfg)
	return cfg
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Hub: HubConfig{
			Username: "admin",
			Timeout:  15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: SIMPLEISY_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Hub
	if v := os.Getenv("SIMPLEISY_HUB_HOST"); v != "" {
		cfg.Hub.Host = v
	}
	if v := os.Getenv("SIMPLEISY_HUB_USERNAME"); v != "" {
		cfg.Hub.Username = v
	}
	if v := os.Getenv("SIMPLEISY_HUB_PASSWORD"); v != "" {
		cfg.Hub.Password = v
	}
	if v := os.Getenv("SIMPLEISY_HUB_HTTPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Hub.HTTPS = b
		}
	}
	if v := os.Getenv("SIMPLEISY_HUB_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Hub.Timeout = n
		}
	}

	// Logging
	if v := os.Getenv("SIMPLEISY_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Hub validation
	if c.Hub.Host == "" {
		errs = append(errs, "hub.host is required (set SIMPLEISY_HUB_HOST environment variable)")
	}
	if c.Hub.Username == "" {
		errs = append(errs, "hub.username is required")
	}
	if c.Hub.Timeout < 1 {
		errs = append(errs, "hub.timeout must be at least 1 second")
	}
	if c.Hub.InsecureSkipVerify && !c.Hub.HTTPS {
		errs = append(errs, "hub.insecure_skip_verify requires hub.https")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetTimeout returns the hub request timeout as a Duration.
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Hub.Timeout) * time.Second
}
