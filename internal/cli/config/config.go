// Package config carries the CLI-wide settings shared by every
// subcommand.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/etfmon/config"
)

// RootConfig holds the global flags of the root command.
type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	NoColor    bool
}

// Load reads the configuration file, or returns the defaults when no
// --config was given. An explicit --db overrides the file's journal
// path.
func (rc *RootConfig) Load() (*config.Config, error) {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	if rc.DBPath != "" {
		cfg.Journal.DBPath = rc.DBPath
	}
	return cfg, nil
}

// Logger builds the CLI logger honoring --log-level and --no-color.
func (rc *RootConfig) Logger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(rc.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("bad log level %q: %w", rc.LogLevel, err)
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: rc.NoColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
