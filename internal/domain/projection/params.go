// Package projection computes a player's projected assists from a market line,
// a season average and a bank of multiplicative context adjustments.
package projection

// Default model constants.
const (
	defaultBaseLine      = 0.55
	defaultBaseSeasonAvg = 0.45

	defaultWeightHomeAway          = 0.03
	defaultWeightGameTotal         = 0.05
	defaultWeightTeamTotal         = 0.10
	defaultWeightOppAssistsAllowed = 0.12
	defaultWeightPace              = 0.06
	defaultWeightRecentForm        = 0.08
	defaultWeightMinutesTrend      = 0.10
	defaultWeightBackToBack        = 0.03
	defaultWeightPotentialAssists  = 0.14

	defaultLeagueGameTotal      = 229.0
	defaultLeagueTeamTotal      = 114.5
	defaultLeaguePace           = 99.5 // possessions per team per game
	defaultLeagueAssistsAllowed = 25.0

	defaultCapMin = 0.70
	defaultCapMax = 1.40
)

// BaseWeights blends the sportsbook line with the season average.
// They are expected to sum to roughly 1.0 but this is not enforced.
type BaseWeights struct {
	Line      float64
	SeasonAvg float64
}

// Sum returns Line + SeasonAvg.
func (b BaseWeights) Sum() float64 { return b.Line + b.SeasonAvg }

// Weights holds one weight per adjustment.
type Weights struct {
	HomeAway          float64
	GameTotal         float64
	TeamTotal         float64
	OppAssistsAllowed float64
	Pace              float64
	RecentForm        float64
	MinutesTrend      float64
	BackToBack        float64
	PotentialAssists  float64
}

// League holds the reference values the relative adjustments compare against.
type League struct {
	GameTotal      float64
	TeamTotal      float64
	Pace           float64
	AssistsAllowed float64
}

// Caps bounds the aggregate multiplier. Individual multipliers are never capped.
type Caps struct {
	Min float64
	Max float64
}

// Params is the full, immutable model configuration.
type Params struct {
	Base    BaseWeights
	Weights Weights
	League  League
	Caps    Caps
}

// DefaultParams returns the stock model tuning.
func DefaultParams() Params {
	return Params{
		Base: BaseWeights{
			Line:      defaultBaseLine,
			SeasonAvg: defaultBaseSeasonAvg,
		},
		Weights: Weights{
			HomeAway:          defaultWeightHomeAway,
			GameTotal:         defaultWeightGameTotal,
			TeamTotal:         defaultWeightTeamTotal,
			OppAssistsAllowed: defaultWeightOppAssistsAllowed,
			Pace:              defaultWeightPace,
			RecentForm:        defaultWeightRecentForm,
			MinutesTrend:      defaultWeightMinutesTrend,
			BackToBack:        defaultWeightBackToBack,
			PotentialAssists:  defaultWeightPotentialAssists,
		},
		League: League{
			GameTotal:      defaultLeagueGameTotal,
			TeamTotal:      defaultLeagueTeamTotal,
			Pace:           defaultLeaguePace,
			AssistsAllowed: defaultLeagueAssistsAllowed,
		},
		Caps: Caps{
			Min: defaultCapMin,
			Max: defaultCapMax,
		},
	}
}
