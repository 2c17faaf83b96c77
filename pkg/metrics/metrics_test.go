package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// counterValue sums every series of the named family in reg.
func counterValue(reg *prometheus.Registry, name string) float64 {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
	}
	return total
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with defaults", func() {
			manager := NewManager()

			Convey("Then it gets its own registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, GetRegistry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithMultiplierBuckets([]float64{0.5, 1.0, 1.5}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)
			manager.RecordProjection(1.0, 5.0)

			Convey("Then metric names follow the namespace and subsystem", func() {
				So(counterValue(registry, "test_unit_projections_total"), ShouldEqual, 1)
			})
		})

		Convey("When asking for the default manager", func() {
			Convey("Then it writes to the custom global registry", func() {
				So(Default(), ShouldNotBeNil)
				So(Default().Registry(), ShouldEqual, GetRegistry())
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording projections", func() {
			manager.RecordProjection(0.97, 4.85)
			manager.RecordProjection(1.40, 9.1)
			manager.RecordCapped("max")
			manager.RecordAdjustment("pace", 1.01)
			manager.RecordAdjustment("home_away", 0.97)
			manager.RecordInputError("line_assists")

			Convey("Then every family is populated", func() {
				So(counterValue(registry, "dime_projection_projections_total"), ShouldEqual, 2)
				So(counterValue(registry, "dime_projection_capped_total"), ShouldEqual, 1)
				So(counterValue(registry, "dime_projection_final_multiplier"), ShouldEqual, 2)
				So(counterValue(registry, "dime_projection_adjustment_multiplier"), ShouldEqual, 2)
				So(counterValue(registry, "dime_projection_input_errors_total"), ShouldEqual, 1)
				So(counterValue(registry, "dime_projection_last_projected_assists"), ShouldEqual, 9.1)
			})
		})

		Convey("When metrics are disabled", func() {
			registry := prometheus.NewRegistry()
			disabled := NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))
			disabled.RecordProjection(1.0, 5.0)
			disabled.RecordCapped("min")
			disabled.RecordInputError("name")

			Convey("Then nothing is recorded", func() {
				So(counterValue(registry, "dime_projection_projections_total"), ShouldEqual, 0)
				So(counterValue(registry, "dime_projection_capped_total"), ShouldEqual, 0)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a manager with one projection", t, func() {
		manager := NewManager()
		manager.RecordProjection(0.97, 4.85)

		Convey("When writing the textfile", func() {
			path := filepath.Join(t.TempDir(), "dime.prom")
			err := manager.WriteTextfile(path)

			Convey("Then it holds the exposition text", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "dime_projection_projections_total 1")
				So(string(data), ShouldContainSubstring, "dime_projection_last_projected_assists 4.85")
				So(strings.Contains(string(data), "player="), ShouldBeFalse)
			})
		})

		Convey("When the directory does not exist", func() {
			err := manager.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dime.prom"))

			Convey("Then the error is wrapped", func() {
				So(errors.Is(err, ErrWriteTextfile), ShouldBeTrue)
			})
		})
	})
}
