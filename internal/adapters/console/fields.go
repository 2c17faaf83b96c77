package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/dime/internal/domain/projection"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
	kindBool
)

// field is one prompt in the interactive sequence.
type field struct {
	key    string
	prompt string
	kind   fieldKind
	text   func(in *projection.Inputs, v string)
	number func(in *projection.Inputs, v float64)
	flag   func(in *projection.Inputs, v bool)
}

// fields lists the prompts in collection order.
var fields = []field{ //nolint:gochecknoglobals // read-only prompt table
	{key: "player_name", prompt: "Player name: ", kind: kindText,
		text: func(in *projection.Inputs, v string) { in.PlayerName = v }},
	{key: "line_assists", prompt: "Sportsbook line (assists): ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.LineAssists = v }},
	{key: "season_avg_assists", prompt: "Season avg assists: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.SeasonAvgAssists = v }},
	{key: "is_home", prompt: "Is home? (1=yes, 0=no): ", kind: kindBool,
		flag: func(in *projection.Inputs, v bool) { in.IsHome = v }},
	{key: "game_total", prompt: "Game total O/U: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.GameTotal = v }},
	{key: "team_total", prompt: "Team total O/U: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.TeamTotal = v }},
	{key: "opp_assists_allowed", prompt: "Opponent assists allowed per game: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.OppAssistsAllowed = v }},
	{key: "matchup_pace", prompt: "Projected matchup pace (possessions per team): ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.MatchupPace = v }},
	{key: "recent_avg_assists", prompt: "Recent avg assists (last N; enter season avg to neutralize): ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.RecentAvgAssists = v }},
	{key: "season_avg_minutes", prompt: "Season avg minutes: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.SeasonAvgMinutes = v }},
	{key: "expected_minutes", prompt: "Expected minutes this game: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.ExpectedMinutes = v }},
	{key: "is_back_to_back", prompt: "Back-to-back? (1=yes, 0=no): ", kind: kindBool,
		flag: func(in *projection.Inputs, v bool) { in.IsBackToBack = v }},
	{key: "last5_potential_assists", prompt: "Last-5 average potential assists: ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.Last5PotentialAssists = v }},
	{key: "last5_conversion", prompt: "Last-5 conversion rate on potential assists (0-1, e.g., 0.54): ", kind: kindNumber,
		number: func(in *projection.Inputs, v float64) { in.Last5Conversion = v }},
}

// apply parses raw and stores it into in.
func (f field) apply(in *projection.Inputs, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f.kind {
	case kindText:
		f.text(in, raw)
		return nil
	case kindNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", raw)
		}
		f.number(in, v)
		return nil
	case kindBool:
		v, err := ParseBool(raw)
		if err != nil {
			return err
		}
		f.flag(in, v)
		return nil
	default:
		return fmt.Errorf("unknown field kind %d", f.kind)
	}
}

// ParseBool accepts 1/0, y/n, yes/no and true/false, case-insensitively.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "y", "yes", "true":
		return true, nil
	case "0", "n", "no", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not yes/no (1/0)", raw)
	}
}
