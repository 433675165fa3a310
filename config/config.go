// Package config loads the monitor configuration from YAML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/etfmon/analysis"
)

// Config represents the complete monitor configuration.
type Config struct {
	Watchlist []Instrument    `json:"watchlist" yaml:"watchlist"`
	Analysis  analysis.Config `json:"analysis" yaml:"analysis"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Alerts    AlertsConfig    `json:"alerts" yaml:"alerts"`
	Monitor   MonitorConfig   `json:"monitor" yaml:"monitor"`
}

// Instrument is one tracked symbol with its assigned monitoring tier.
type Instrument struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Level    int    `json:"level" yaml:"level"` // 1 held, 2 watchlist, 3 passive
}

// FetchConfig contains price source parameters.
type FetchConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Days    int    `json:"days,omitempty" yaml:"days,omitempty"` // sessions to request, default 120
}

// JournalConfig contains persistence parameters.
type JournalConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// AlertsConfig contains notification parameters. With an empty SMTP
// host alerts only go to the log.
type AlertsConfig struct {
	SMTPHost     string   `json:"smtp_host,omitempty" yaml:"smtp_host,omitempty"`
	SMTPPort     int      `json:"smtp_port,omitempty" yaml:"smtp_port,omitempty"`
	SMTPUsername string   `json:"smtp_username,omitempty" yaml:"smtp_username,omitempty"`
	SMTPPassword string   `json:"smtp_password,omitempty" yaml:"smtp_password,omitempty"`
	From         string   `json:"from,omitempty" yaml:"from,omitempty"`
	To           []string `json:"to,omitempty" yaml:"to,omitempty"`
}

// MonitorConfig contains scheduling and API parameters.
type MonitorConfig struct {
	Interval string `json:"interval,omitempty" yaml:"interval,omitempty"` // e.g. "24h", "30m"
	Workers  int    `json:"workers,omitempty" yaml:"workers,omitempty"`
	Listen   string `json:"listen,omitempty" yaml:"listen,omitempty"` // api address, e.g. ":8080"
}

// ParseInterval converts the monitor interval to a time.Duration, 24h
// when unset.
func (m MonitorConfig) ParseInterval() (time.Duration, error) {
	if m.Interval == "" {
		return 24 * time.Hour, nil
	}
	return time.ParseDuration(m.Interval)
}

// Default returns a runnable configuration with an empty watchlist.
func Default() *Config {
	return &Config{
		Analysis: analysis.DefaultConfig(),
		Fetch:    FetchConfig{Days: 120},
		Journal:  JournalConfig{DBPath: "etfmon.db"},
		Monitor:  MonitorConfig{Interval: "24h", Workers: 4, Listen: ":8080"},
	}
}

// LoadFromFile loads configuration from a file (YAML first, JSON as
// fallback). Missing sections keep their defaults, and the SMTP
// password can come from the ETFMON_SMTP_PASSWORD environment
// variable instead of the file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if cfg.Alerts.SMTPPassword == "" {
		cfg.Alerts.SMTPPassword = os.Getenv("ETFMON_SMTP_PASSWORD")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on
// extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	seen := map[string]bool{}
	for i, inst := range c.Watchlist {
		if inst.Symbol == "" {
			return fmt.Errorf("watchlist[%d]: symbol is required", i)
		}
		if seen[inst.Symbol] {
			return fmt.Errorf("watchlist: duplicate symbol %s", inst.Symbol)
		}
		seen[inst.Symbol] = true
		if inst.Level < 1 || inst.Level > 3 {
			return fmt.Errorf("watchlist[%d]: level must be 1, 2 or 3", i)
		}
	}

	if c.Fetch.Days < 0 {
		return fmt.Errorf("fetch.days must not be negative")
	}
	if c.Monitor.Workers < 0 {
		return fmt.Errorf("monitor.workers must not be negative")
	}
	if _, err := c.Monitor.ParseInterval(); err != nil {
		return fmt.Errorf("monitor.interval: %w", err)
	}

	if c.Alerts.SMTPHost != "" {
		if c.Alerts.From == "" || len(c.Alerts.To) == 0 {
			return fmt.Errorf("alerts from and to required when smtp_host is set")
		}
	}
	return nil
}

// LevelFor returns the configured tier for a symbol, 0 when the symbol
// is not on the watchlist.
func (c *Config) LevelFor(symbol string) int {
	for _, inst := range c.Watchlist {
		if inst.Symbol == symbol {
			return inst.Level
		}
	}
	return 0
}
