// Package report renders projections for people and for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/okian/dime/internal/domain/model"
	"github.com/okian/dime/internal/domain/projection"
)

// Formats understood by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Write for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Labels for the text report, in projection.Adjustments() order.
var textLabels = [projection.NumAdjustments]string{ //nolint:gochecknoglobals // read-only label table
	projection.HomeAway:          "Home/Away",
	projection.GameTotal:         "Game Total (O/U)",
	projection.TeamTotal:         "Team Total (O/U)",
	projection.OppAssistsAllowed: "Opp AST Allowed",
	projection.Pace:              "Pace",
	projection.RecentForm:        "Recent Form",
	projection.MinutesTrend:      "Minutes Trend",
	projection.BackToBack:        "Back-to-Back",
	projection.PotentialAssists:  "Last-5 Potential AST",
}

// Write renders ps in format.
func Write(w io.Writer, format string, ps []model.Projection) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		for _, p := range ps {
			if err := WriteText(w, p); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return WriteJSON(w, ps)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText renders one projection as a labeled console report.
func WriteText(w io.Writer, p model.Projection) error {
	r := p.Result
	var b strings.Builder
	fmt.Fprintf(&b, "\nAssist Projection for %s\n", p.Inputs.PlayerName)
	b.WriteString("----------------------------------------\n")
	fmt.Fprintf(&b, "Base (blend)            : %.2f\n", r.Base)
	b.WriteString("Multipliers:\n")
	for _, adj := range projection.Adjustments() {
		fmt.Fprintf(&b, "  %-22s: %.4f\n", textLabels[adj], r.Multiplier(adj))
	}
	fmt.Fprintf(&b, "Uncapped Multiplier     : %.4f\n", r.Uncapped)
	fmt.Fprintf(&b, "Final Multiplier        : %.4f  (capped to [%.2f, %.2f])\n", r.Final, p.Caps.Min, p.Caps.Max)
	fmt.Fprintf(&b, "Projected Assists       : %.2f\n\n", r.Projection)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}

// jsonReport is the machine-readable shape of one projection.
type jsonReport struct {
	ID          string             `json:"id"`
	Player      string             `json:"player"`
	Base        float64            `json:"base"`
	Multipliers map[string]float64 `json:"multipliers"`
	Uncapped    float64            `json:"uncapped_multiplier"`
	Final       float64            `json:"final_multiplier"`
	Capped      string             `json:"capped"`
	CapMin      float64            `json:"cap_min"`
	CapMax      float64            `json:"cap_max"`
	Projection  float64            `json:"projection"`
}

func toJSON(p model.Projection) jsonReport {
	ms := make(map[string]float64, projection.NumAdjustments)
	for _, adj := range projection.Adjustments() {
		ms[adj.String()] = p.Result.Multiplier(adj)
	}
	return jsonReport{
		ID:          p.ID,
		Player:      p.Inputs.PlayerName,
		Base:        p.Result.Base,
		Multipliers: ms,
		Uncapped:    p.Result.Uncapped,
		Final:       p.Result.Final,
		Capped:      p.Result.Capped().String(),
		CapMin:      p.Caps.Min,
		CapMax:      p.Caps.Max,
		Projection:  p.Result.Projection,
	}
}

// WriteJSON renders ps as an indented JSON array.
func WriteJSON(w io.Writer, ps []model.Projection) error {
	out := make([]jsonReport, len(ps))
	for i, p := range ps {
		out[i] = toJSON(p)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}
