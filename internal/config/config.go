// Package config defines process configuration and how it is loaded.
//
// Conventions:
//   - New returns a Config seeded with the stock model tuning.
//   - Load layers a YAML file and environment variables on top of it.
//   - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"github.com/okian/dime/internal/domain/projection"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Output selects the report format: text or json.
	Output string `koanf:"output"`

	// MetricsFile, when set, receives a Prometheus textfile dump after each run.
	MetricsFile string `koanf:"metrics_file"`

	// Model holds the projection tuning.
	Model Model `koanf:"model"`
}

// Model mirrors projection.Params with config tags.
type Model struct {
	Base    Base    `koanf:"base"`
	Weights Weights `koanf:"weights"`
	League  League  `koanf:"league"`
	Caps    Caps    `koanf:"caps"`
}

// Base holds the base blend weights.
type Base struct {
	Line      float64 `koanf:"line"`
	SeasonAvg float64 `koanf:"season_avg"`
}

// Weights holds one weight per adjustment.
type Weights struct {
	HomeAway          float64 `koanf:"home_away"`
	GameTotal         float64 `koanf:"game_total"`
	TeamTotal         float64 `koanf:"team_total"`
	OppAssistsAllowed float64 `koanf:"opp_assists_allowed"`
	Pace              float64 `koanf:"pace"`
	RecentForm        float64 `koanf:"recent_form"`
	MinutesTrend      float64 `koanf:"minutes_trend"`
	BackToBack        float64 `koanf:"back_to_back"`
	PotentialAssists  float64 `koanf:"potential_assists"`
}

// League holds the league-average baselines.
type League struct {
	GameTotal      float64 `koanf:"game_total"`
	TeamTotal      float64 `koanf:"team_total"`
	Pace           float64 `koanf:"pace"`
	AssistsAllowed float64 `koanf:"assists_allowed"`
}

// Caps bounds the aggregate multiplier.
type Caps struct {
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

// New creates a Config with defaults.
func New() *Config {
	p := projection.DefaultParams()
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "text",
		Model: Model{
			Base: Base{Line: p.Base.Line, SeasonAvg: p.Base.SeasonAvg},
			Weights: Weights{
				HomeAway:          p.Weights.HomeAway,
				GameTotal:         p.Weights.GameTotal,
				TeamTotal:         p.Weights.TeamTotal,
				OppAssistsAllowed: p.Weights.OppAssistsAllowed,
				Pace:              p.Weights.Pace,
				RecentForm:        p.Weights.RecentForm,
				MinutesTrend:      p.Weights.MinutesTrend,
				BackToBack:        p.Weights.BackToBack,
				PotentialAssists:  p.Weights.PotentialAssists,
			},
			League: League{
				GameTotal:      p.League.GameTotal,
				TeamTotal:      p.League.TeamTotal,
				Pace:           p.League.Pace,
				AssistsAllowed: p.League.AssistsAllowed,
			},
			Caps: Caps{Min: p.Caps.Min, Max: p.Caps.Max},
		},
	}
}

// Params converts the model section into the engine's parameter set.
func (m Model) Params() projection.Params {
	return projection.Params{
		Base: projection.BaseWeights{Line: m.Base.Line, SeasonAvg: m.Base.SeasonAvg},
		Weights: projection.Weights{
			HomeAway:          m.Weights.HomeAway,
			GameTotal:         m.Weights.GameTotal,
			TeamTotal:         m.Weights.TeamTotal,
			OppAssistsAllowed: m.Weights.OppAssistsAllowed,
			Pace:              m.Weights.Pace,
			RecentForm:        m.Weights.RecentForm,
			MinutesTrend:      m.Weights.MinutesTrend,
			BackToBack:        m.Weights.BackToBack,
			PotentialAssists:  m.Weights.PotentialAssists,
		},
		League: projection.League{
			GameTotal:      m.League.GameTotal,
			TeamTotal:      m.League.TeamTotal,
			Pace:           m.League.Pace,
			AssistsAllowed: m.League.AssistsAllowed,
		},
		Caps: projection.Caps{Min: m.Caps.Min, Max: m.Caps.Max},
	}
}
