package app

import (
	"errors"
	"fmt"

	"github.com/AreyMadhav/PakSeek/internal/config"
)

// Defaults applied after the config file merge for anything still unset.
const (
	DefaultPort    = 8080
	DefaultWorkers = 4
)

// Config holds all the necessary configuration for an App instance to run.
// Zero values mean "not set"; the config file fills them in, then defaults.
type Config struct {
	ScanPath   string
	ConfigPath string

	Workers      int
	ExportFormat string

	Serve bool
	Port  int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a fully merged configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScanPath == "" {
		return nil, errors.New("ScanPath is a required configuration field and cannot be empty")
	}
	if cfg.Serve && (cfg.Port < 1 || cfg.Port > 65535) {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", cfg.Port)
	}
	return &cfg, nil
}

// merge fills unset fields from the loaded configuration file. Command
// line values always win over file values.
func (c *Config) merge(file *config.File) {
	if file.Scan != nil {
		if c.ScanPath == "" {
			c.ScanPath = file.Scan.Path
		}
		if c.Workers <= 0 {
			c.Workers = file.Scan.Workers
		}
	}
	if file.Server != nil {
		if !c.Serve {
			c.Serve = file.Server.Enabled
		}
		if c.Port <= 0 {
			c.Port = file.Server.Port
		}
	}
	if file.Log != nil {
		if c.LogLevel == "" {
			c.LogLevel = file.Log.Level
		}
		if c.LogFormat == "" {
			c.LogFormat = file.Log.Format
		}
	}
	if file.Export != nil && c.ExportFormat == "" {
		c.ExportFormat = file.Export.Format
	}
}

// applyDefaults fills whatever neither flags nor the file set.
func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}
