package projection

// Engine projects assists under a fixed parameter set. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	params Params
}

// New returns an Engine bound to a copy of p.
func New(p Params) *Engine {
	return &Engine{params: p}
}

// Params returns a copy of the engine's parameters.
func (e *Engine) Params() Params { return e.params }

// Project runs the full computation for in.
func (e *Engine) Project(in Inputs) Result {
	var r Result
	r.Base = Base(&e.params, &in)
	for _, adj := range Adjustments() {
		r.Multipliers[adj] = Multiplier(&e.params, adj, &in)
	}
	r.Uncapped, r.Final = Aggregate(&e.params, r.Multipliers[:])
	r.Projection = r.Base * r.Final
	return r
}

// Base blends the line and the season average.
func Base(p *Params, in *Inputs) float64 {
	return p.Base.Line*in.LineAssists + p.Base.SeasonAvg*in.SeasonAvgAssists
}

// Multiplier evaluates a single adjustment. Unknown adjustments are neutral.
func Multiplier(p *Params, adj Adjustment, in *Inputs) float64 {
	if adj < 0 || int(adj) >= NumAdjustments {
		return 1.0
	}
	return bank[adj](p, in)
}

// Aggregate multiplies ms and clamps the product into the configured caps.
func Aggregate(p *Params, ms []float64) (uncapped, final float64) {
	uncapped = 1.0
	for _, m := range ms {
		uncapped *= m
	}
	return uncapped, clamp(uncapped, p.Caps.Min, p.Caps.Max)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
