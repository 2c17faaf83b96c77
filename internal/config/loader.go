package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "DIME_"
	envConfigFile = "DIME_CONFIG"
	envNestingSep = "__"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DIME_CONFIG is set
//  3. env (prefix DIME_, "__" separates nested keys)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// DIME_MODEL__CAPS__MAX -> model.caps.max, DIME_LOG_LEVEL -> log_level.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, strings.ToLower(envNestingSep), ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	// DIME_CONFIG itself is not a config key.
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the engine cannot absorb on its own.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output must be text or json, got %q", ErrInvalidConfig, c.Output)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	caps := c.Model.Caps
	if caps.Min <= 0 || caps.Max <= 0 {
		return fmt.Errorf("%w: caps must be positive, got [%g, %g]", ErrInvalidConfig, caps.Min, caps.Max)
	}
	if caps.Min > caps.Max {
		return fmt.Errorf("%w: caps.min %g exceeds caps.max %g", ErrInvalidConfig, caps.Min, caps.Max)
	}

	league := c.Model.League
	for name, v := range map[string]float64{
		"game_total":      league.GameTotal,
		"team_total":      league.TeamTotal,
		"pace":            league.Pace,
		"assists_allowed": league.AssistsAllowed,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: league.%s must be positive, got %g", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
