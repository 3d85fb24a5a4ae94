// Package config reads process configuration from the environment, once,
// at startup. The resulting values are threaded explicitly into the
// collaborators that need them; no other package touches the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

// DefaultBaseURL is the schedule archive the venue publishes its monthly
// pages under.
const DefaultBaseURL = "http://brionac.s17.xrea.com/schedule/homepage/homepage/calendar"

// Config is the full process configuration.
type Config struct {
	RemoteUser string `env:"REMOTEUSER,required"`
	RemotePass string `env:"REMOTEPASS,required"`
	BaseURL    string `env:"BASE_URL"`
}

// Load parses the environment. Missing or empty credentials are a startup
// error: an empty credential is as unusable as an unset one.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.RemoteUser == "" {
		return nil, fmt.Errorf("REMOTEUSER must be configured")
	}
	if cfg.RemotePass == "" {
		return nil, fmt.Errorf("REMOTEPASS must be configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}
