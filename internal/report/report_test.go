package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/dime/internal/domain/model"
	"github.com/okian/dime/internal/domain/projection"
	"github.com/okian/dime/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func neutralProjection() model.Projection {
	params := projection.DefaultParams()
	in := projection.Inputs{
		PlayerName:            "Test Guard",
		LineAssists:           5,
		SeasonAvgAssists:      5,
		GameTotal:             229,
		TeamTotal:             114.5,
		OppAssistsAllowed:     25,
		MatchupPace:           99.5,
		RecentAvgAssists:      5,
		SeasonAvgMinutes:      30,
		ExpectedMinutes:       30,
		Last5PotentialAssists: 10,
		Last5Conversion:       0.5,
	}
	return model.NewProjection(in, projection.New(params).Project(in), params.Caps)
}

func TestWriteText(t *testing.T) {
	Convey("Given a neutral away projection", t, func() {
		p := neutralProjection()
		var buf bytes.Buffer

		Convey("When rendering it as text", func() {
			err := report.WriteText(&buf, p)
			out := buf.String()

			Convey("Then it carries every labeled line", func() {
				So(err, ShouldBeNil)
				So(out, ShouldStartWith, "\nAssist Projection for Test Guard\n")
				So(out, ShouldContainSubstring, "Base (blend)            : 5.00\n")
				So(out, ShouldContainSubstring, "  Home/Away             : 0.9700\n")
				So(out, ShouldContainSubstring, "  Last-5 Potential AST  : 1.0000\n")
				So(out, ShouldContainSubstring, "Uncapped Multiplier     : 0.9700\n")
				So(out, ShouldContainSubstring, "Final Multiplier        : 0.9700  (capped to [0.70, 1.40])\n")
				So(out, ShouldEndWith, "Projected Assists       : 4.85\n\n")
			})
		})
	})
}

func TestWriteJSON(t *testing.T) {
	Convey("Given a neutral away projection", t, func() {
		p := neutralProjection()
		var buf bytes.Buffer

		Convey("When rendering it as json", func() {
			err := report.Write(&buf, "JSON", []model.Projection{p})

			Convey("Then it decodes back to named fields", func() {
				So(err, ShouldBeNil)
				var got []map[string]any
				So(json.Unmarshal(buf.Bytes(), &got), ShouldBeNil)
				So(len(got), ShouldEqual, 1)
				So(got[0]["id"], ShouldEqual, p.ID)
				So(got[0]["player"], ShouldEqual, "Test Guard")
				So(got[0]["capped"], ShouldEqual, "none")
				So(got[0]["projection"], ShouldAlmostEqual, 4.85, 1e-9)

				ms, ok := got[0]["multipliers"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(len(ms), ShouldEqual, projection.NumAdjustments)
				So(ms["home_away"], ShouldAlmostEqual, 0.97, 1e-9)
			})
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given two projections", t, func() {
		ps := []model.Projection{neutralProjection(), neutralProjection()}
		var buf bytes.Buffer

		Convey("When rendering text", func() {
			So(report.Write(&buf, "text", ps), ShouldBeNil)
			So(bytes.Count(buf.Bytes(), []byte("Assist Projection for")), ShouldEqual, 2)
		})

		Convey("When the format is unknown", func() {
			err := report.Write(&buf, "xml", ps)
			So(errors.Is(err, report.ErrUnknownFormat), ShouldBeTrue)
		})
	})
}
