package projection

// Inputs is one projection request. Every field must be supplied by the caller;
// ranges are not validated.
type Inputs struct {
	PlayerName string

	// Core baselines.
	LineAssists      float64 // sportsbook assists line
	SeasonAvgAssists float64

	// Game context.
	IsHome            bool
	GameTotal         float64 // game total over/under
	TeamTotal         float64 // team total over/under
	OppAssistsAllowed float64 // opponent assists allowed per game

	// Pace and usage.
	MatchupPace      float64 // projected possessions per team
	RecentAvgAssists float64 // pass SeasonAvgAssists to neutralize
	SeasonAvgMinutes float64
	ExpectedMinutes  float64
	IsBackToBack     bool

	// Potential assists over the last five games.
	Last5PotentialAssists float64
	Last5Conversion       float64 // share of potential assists converted, 0..1
}

// Adjustment identifies one multiplier in the adjustment bank.
type Adjustment int

// Adjustments in report order.
const (
	HomeAway Adjustment = iota
	GameTotal
	TeamTotal
	OppAssistsAllowed
	Pace
	RecentForm
	MinutesTrend
	BackToBack
	PotentialAssists

	NumAdjustments = int(PotentialAssists) + 1
)

var adjustmentNames = [NumAdjustments]string{
	HomeAway:          "home_away",
	GameTotal:         "game_total",
	TeamTotal:         "team_total",
	OppAssistsAllowed: "opp_assists_allowed",
	Pace:              "pace",
	RecentForm:        "recent_form",
	MinutesTrend:      "minutes_trend",
	BackToBack:        "back_to_back",
	PotentialAssists:  "potential_assists",
}

// String returns the snake_case name used in logs, metrics and JSON.
func (a Adjustment) String() string {
	if a < 0 || int(a) >= NumAdjustments {
		return "unknown"
	}
	return adjustmentNames[a]
}

// Adjustments lists every adjustment in report order.
func Adjustments() []Adjustment {
	out := make([]Adjustment, NumAdjustments)
	for i := range out {
		out[i] = Adjustment(i)
	}
	return out
}

// Bound reports which cap, if any, the aggregate multiplier hit.
type Bound int

const (
	BoundNone Bound = iota
	BoundMin
	BoundMax
)

func (b Bound) String() string {
	switch b {
	case BoundMin:
		return "min"
	case BoundMax:
		return "max"
	default:
		return "none"
	}
}

// Result carries every intermediate value of one projection.
type Result struct {
	Base        float64
	Multipliers [NumAdjustments]float64
	Uncapped    float64
	Final       float64
	Projection  float64
}

// Multiplier returns the individual multiplier for adj. Unknown adjustments
// are neutral.
func (r Result) Multiplier(adj Adjustment) float64 {
	if adj < 0 || int(adj) >= NumAdjustments {
		return 1.0
	}
	return r.Multipliers[adj]
}

// Capped reports which bound clamped the aggregate.
func (r Result) Capped() Bound {
	switch {
	case r.Uncapped < r.Final:
		return BoundMin
	case r.Uncapped > r.Final:
		return BoundMax
	default:
		return BoundNone
	}
}
