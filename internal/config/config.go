// Package config holds all application configuration as an explicit record.
// Components receive a Config (or a sub-struct) at construction; nothing
// reads configuration from package-level state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTimestampLayout matches timestamps like
// "01.07.2025 00:00:00.000 GMT+0200" as exported by common broker tools.
const DefaultTimestampLayout = "02.01.2006 15:04:05.000 GMT-0700"

// Config holds all application configuration.
type Config struct {
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Data struct {
		TimestampLayout string `yaml:"timestamp_layout"`
	} `yaml:"data"`
	Chart struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"chart"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TIMESTAMP_LAYOUT"); v != "" {
		cfg.Data.TimestampLayout = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Data.TimestampLayout == "" {
		cfg.Data.TimestampLayout = DefaultTimestampLayout
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 1200
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 600
	}
	if cfg.Chart.Title == "" {
		cfg.Chart.Title = "Stock Price Chart"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "127.0.0.1:8421"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockchart.db"
	}

	return cfg, nil
}

// Validate checks that all fields carry usable values.
func (c *Config) Validate() error {
	if c.Data.TimestampLayout == "" {
		return fmt.Errorf("data.timestamp_layout is required")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
