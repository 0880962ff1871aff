package main

import (
	"fmt"

	"github.com/cseelye/simpleisy/internal/infrastructure/config"
	"github.com/cseelye/simpleisy/internal/infrastructure/logging"
	"github.com/cseelye/simpleisy/isy"
)

// Connection flags, shared by every subcommand. Flags override both the
// config file and SIMPLEISY_* environment variables.
var (
	flagConfig   string
	flagHost     string
	flagUsername string
	flagPassword string
	flagHTTPS    bool
	flagInsecure bool
	flagLogLevel string
)

// newController resolves configuration and builds a hub controller.
//
// Resolution order: defaults, then the config file (when --config is
// given), then environment variables, then command-line flags.
func newController() (*isy.Controller, *logging.Logger, error) {
	// Bootstrap logger until the merged configuration tells us better.
	log := logging.Default()

	var cfg *config.Config
	if flagConfig != "" {
		log.Debug("loading config file", "path", flagConfig)
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	} else {
		log.Debug("no config file given, using environment and flags")
		cfg = config.New()
	}
	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("resolving hub connection: %w", err)
	}

	log = logging.New(cfg.Logging, version)
	if cfg.Hub.InsecureSkipVerify {
		log.Warn("TLS certificate verification disabled", "host", cfg.Hub.Host)
	}

	opts := []isy.Option{
		isy.WithTimeout(cfg.GetTimeout()),
		isy.WithLogger(log),
	}
	if cfg.Hub.HTTPS {
		opts = append(opts, isy.WithHTTPS())
	}
	if cfg.Hub.InsecureSkipVerify {
		opts = append(opts, isy.WithInsecureTLS())
	}

	ctrl := isy.New(cfg.Hub.Host, cfg.Hub.Username, cfg.Hub.Password, opts...)
	return ctrl, log, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flagHost != "" {
		cfg.Hub.Host = flagHost
	}
	if flagUsername != "" {
		cfg.Hub.Username = flagUsername
	}
	if flagPassword != "" {
		cfg.Hub.Password = flagPassword
	}
	if flagHTTPS {
		cfg.Hub.HTTPS = true
	}
	if flagInsecure {
		cfg.Hub.InsecureSkipVerify = true
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
}
