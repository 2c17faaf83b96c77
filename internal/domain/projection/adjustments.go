package projection

// adjuster maps inputs to one multiplier centered on 1.0. Each row owns its
// degenerate-input guard; they are not interchangeable.
type adjuster func(p *Params, in *Inputs) float64

var bank = [NumAdjustments]adjuster{
	HomeAway: func(p *Params, in *Inputs) float64 {
		if in.IsHome {
			return 1.0 + p.Weights.HomeAway
		}
		return 1.0 - p.Weights.HomeAway
	},
	GameTotal: func(p *Params, in *Inputs) float64 {
		return relative(in.GameTotal, p.League.GameTotal, p.Weights.GameTotal)
	},
	TeamTotal: func(p *Params, in *Inputs) float64 {
		return relative(in.TeamTotal, p.League.TeamTotal, p.Weights.TeamTotal)
	},
	OppAssistsAllowed: func(p *Params, in *Inputs) float64 {
		if p.League.AssistsAllowed <= 0 {
			return 1.0
		}
		return relative(in.OppAssistsAllowed, p.League.AssistsAllowed, p.Weights.OppAssistsAllowed)
	},
	Pace: func(p *Params, in *Inputs) float64 {
		if p.League.Pace <= 0 {
			return 1.0
		}
		return relative(in.MatchupPace, p.League.Pace, p.Weights.Pace)
	},
	RecentForm: func(p *Params, in *Inputs) float64 {
		if p.Weights.RecentForm == 0 || in.SeasonAvgAssists <= 0 {
			return 1.0
		}
		return relative(in.RecentAvgAssists, in.SeasonAvgAssists, p.Weights.RecentForm)
	},
	MinutesTrend: func(p *Params, in *Inputs) float64 {
		if p.Weights.MinutesTrend == 0 || in.SeasonAvgMinutes <= 0 {
			return 1.0
		}
		return relative(in.ExpectedMinutes, in.SeasonAvgMinutes, p.Weights.MinutesTrend)
	},
	BackToBack: func(p *Params, in *Inputs) float64 {
		if in.IsBackToBack && p.Weights.BackToBack > 0 {
			return 1.0 - p.Weights.BackToBack
		}
		return 1.0
	},
	PotentialAssists: func(p *Params, in *Inputs) float64 {
		if p.Weights.PotentialAssists == 0 || in.SeasonAvgAssists <= 0 {
			return 1.0
		}
		expected := in.Last5PotentialAssists * in.Last5Conversion
		return relative(expected, in.SeasonAvgAssists, p.Weights.PotentialAssists)
	},
}

// relative returns 1 + w*(observed-ref)/ref.
func relative(observed, ref, w float64) float64 {
	rel := (observed - ref) / ref
	return 1.0 + rel*w
}
