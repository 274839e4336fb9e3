// Package config provides environment-based configuration for sapgui-cli.
//
// SAP connection credentials are read from the process environment. They are
// validated when a transaction is launched, not at startup, so read-only
// operations work without a full credential set.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	SAP     SAPConfig
	Logging LogConfig
}

// SAPConfig holds the SAP GUI connection settings.
type SAPConfig struct {
	System   string `envconfig:"SAP_SYSTEM"`
	Client   string `envconfig:"SAP_CLIENT"`
	User     string `envconfig:"SAP_USER"`
	Password string `envconfig:"SAP_PASSWORD"`

	// GUIPath overrides the SAP GUI installation path. Empty means the
	// platform backend probes its default location.
	GUIPath string `envconfig:"SAP_GUI_PATH"`

	// ProcessName is the image name of the live SAP GUI process, used to
	// scope window enumeration.
	ProcessName string `envconfig:"SAP_PROCESS_NAME" default:"saplogon.exe"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// MissingCredentials returns the names of required connection variables that
// are unset. An empty result means a launch may proceed.
func (c *SAPConfig) MissingCredentials() []string {
	var missing []string
	if c.System == "" {
		missing = append(missing, "SAP_SYSTEM")
	}
	if c.Client == "" {
		missing = append(missing, "SAP_CLIENT")
	}
	if c.User == "" {
		missing = append(missing, "SAP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SAP_PASSWORD")
	}
	return missing
}
