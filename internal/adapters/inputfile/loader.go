// Package inputfile loads batches of projection inputs from YAML or JSON files.
//
// The document holds a single "players" list; every record must carry every
// key, there are no defaults:
//
//	players:
//	  - player_name: Test Guard
//	    line_assists: 6.5
//	    season_avg_assists: 7.2
//	    is_home: true
//	    ...
package inputfile

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/dime/internal/domain/projection"
)

const playersKey = "players"

// record mirrors projection.Inputs with file keys.
type record struct {
	PlayerName            string  `koanf:"player_name"`
	LineAssists           float64 `koanf:"line_assists"`
	SeasonAvgAssists      float64 `koanf:"season_avg_assists"`
	IsHome                bool    `koanf:"is_home"`
	GameTotal             float64 `koanf:"game_total"`
	TeamTotal             float64 `koanf:"team_total"`
	OppAssistsAllowed     float64 `koanf:"opp_assists_allowed"`
	MatchupPace           float64 `koanf:"matchup_pace"`
	RecentAvgAssists      float64 `koanf:"recent_avg_assists"`
	SeasonAvgMinutes      float64 `koanf:"season_avg_minutes"`
	ExpectedMinutes       float64 `koanf:"expected_minutes"`
	IsBackToBack          bool    `koanf:"is_back_to_back"`
	Last5PotentialAssists float64 `koanf:"last5_potential_assists"`
	Last5Conversion       float64 `koanf:"last5_conversion"`
}

// RequiredKeys lists every key a record must carry, in record order.
func RequiredKeys() []string {
	return []string{
		"player_name",
		"line_assists",
		"season_avg_assists",
		"is_home",
		"game_total",
		"team_total",
		"opp_assists_allowed",
		"matchup_pace",
		"recent_avg_assists",
		"season_avg_minutes",
		"expected_minutes",
		"is_back_to_back",
		"last5_potential_assists",
		"last5_conversion",
	}
}

func (r record) inputs() projection.Inputs {
	return projection.Inputs{
		PlayerName:            r.PlayerName,
		LineAssists:           r.LineAssists,
		SeasonAvgAssists:      r.SeasonAvgAssists,
		IsHome:                r.IsHome,
		GameTotal:             r.GameTotal,
		TeamTotal:             r.TeamTotal,
		OppAssistsAllowed:     r.OppAssistsAllowed,
		MatchupPace:           r.MatchupPace,
		RecentAvgAssists:      r.RecentAvgAssists,
		SeasonAvgMinutes:      r.SeasonAvgMinutes,
		ExpectedMinutes:       r.ExpectedMinutes,
		IsBackToBack:          r.IsBackToBack,
		Last5PotentialAssists: r.Last5PotentialAssists,
		Last5Conversion:       r.Last5Conversion,
	}
}

// Load reads every player record from path.
func Load(ctx context.Context, path string) ([]projection.Inputs, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	raw, ok := k.Get(playersKey).([]any)
	if k.Exists(playersKey) && !ok {
		return nil, fmt.Errorf("%w: %s: players must be a list", ErrDecodeRecord, path)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRecords, path)
	}
	// Slices drops non-map entries, which would shift every later index.
	for i, entry := range raw {
		if _, isMap := entry.(map[string]any); !isMap {
			return nil, fmt.Errorf("%w: %s: players[%d] is not a record", ErrDecodeRecord, path, i)
		}
	}
	players := k.Slices(playersKey)

	out := make([]projection.Inputs, 0, len(players))
	for i, pk := range players {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		for _, key := range RequiredKeys() {
			if !pk.Exists(key) || pk.Get(key) == nil {
				return nil, fmt.Errorf("%w: %s: players[%d].%s", ErrMissingField, path, i, key)
			}
		}

		var rec record
		if err := pk.UnmarshalWithConf("", &rec, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
			return nil, fmt.Errorf("%w: %s: players[%d]: %w", ErrDecodeRecord, path, i, err)
		}
		out = append(out, rec.inputs())
	}
	return out, nil
}
