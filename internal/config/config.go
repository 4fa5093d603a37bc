// Package config loads the unitconv command configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/arloliu/unitcode/internal/logging"
	"github.com/arloliu/unitcode/unitsystem"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds the settings every unitconv command shares. Command-line
// flags override them.
type Config struct {
	// System picks preferred units when a command is not given one.
	System unitsystem.System `env:"UNITCONV_SYSTEM" envDefault:"metric"`
	// Locale is the BCP 47 tag used to format numbers.
	Locale string `env:"UNITCONV_LOCALE" envDefault:"en-US"`

	LogLevel  logging.Level  `env:"UNITCONV_LOG_LEVEL" envDefault:"warn"`
	LogFormat logging.Format `env:"UNITCONV_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from the environment and validates the locale.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.Tag(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Tag parses Locale.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}

	return tag, nil
}
