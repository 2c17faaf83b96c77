package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/okian/dime/internal/app"
	"github.com/okian/dime/internal/domain/projection"
	"github.com/okian/dime/pkg/logger"
	"github.com/okian/dime/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func sampleInputs(name string) projection.Inputs {
	return projection.Inputs{
		PlayerName:            name,
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
}

func familyCount(reg *prometheus.Registry, name string) float64 {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it uses the default params", func() {
			So(svc, ShouldNotBeNil)
			So(svc.Params(), ShouldResemble, projection.DefaultParams())
		})
	})

	Convey("Given a new service with custom params", t, func() {
		p := projection.DefaultParams()
		p.Caps.Max = 1.2
		svc := service.New(service.WithParams(p), service.WithLogger(logger.Named("test")))

		Convey("Then it projects with them", func() {
			So(svc.Params().Caps.Max, ShouldEqual, 1.2)
		})
	})
}

func TestService_Project(t *testing.T) {
	Convey("Given a service with its own metrics registry", t, func() {
		reg := prometheus.NewRegistry()
		svc := service.New(service.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(reg))))
		ctx := context.Background()

		Convey("When projecting a neutral away game", func() {
			p := svc.Project(ctx, sampleInputs("Test Guard"))

			Convey("Then the result matches the engine", func() {
				So(p.ID, ShouldNotBeEmpty)
				So(p.Inputs.PlayerName, ShouldEqual, "Test Guard")
				So(p.Result.Projection, ShouldAlmostEqual, 4.85, 1e-9)
				So(p.Caps, ShouldResemble, projection.DefaultParams().Caps)
			})

			Convey("And the projection is counted", func() {
				So(familyCount(reg, "dime_projection_projections_total"), ShouldEqual, 1)
				So(familyCount(reg, "dime_projection_capped_total"), ShouldEqual, 0)
			})
		})

		Convey("When projecting a capped game", func() {
			in := sampleInputs("Hot Hand")
			in.IsHome = true
			in.TeamTotal = 160
			in.RecentAvgAssists = 12
			in.Last5PotentialAssists = 30
			in.ExpectedMinutes = 42
			p := svc.Project(ctx, in)

			Convey("Then the cap hit is recorded", func() {
				So(p.Result.Capped(), ShouldEqual, projection.BoundMax)
				So(familyCount(reg, "dime_projection_capped_total"), ShouldEqual, 1)
			})
		})
	})
}

func TestService_ProjectAll(t *testing.T) {
	Convey("Given a service and a batch", t, func() {
		svc := service.New(service.WithMetrics(metrics.NewManager()))
		batch := []projection.Inputs{sampleInputs("A"), sampleInputs("B"), sampleInputs("C")}

		Convey("When projecting the batch", func() {
			ps, err := svc.ProjectAll(context.Background(), batch)

			Convey("Then every player is projected in order with distinct ids", func() {
				So(err, ShouldBeNil)
				So(len(ps), ShouldEqual, 3)
				So(ps[0].Inputs.PlayerName, ShouldEqual, "A")
				So(ps[2].Inputs.PlayerName, ShouldEqual, "C")
				So(ps[0].ID, ShouldNotEqual, ps[1].ID)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			ps, err := svc.ProjectAll(ctx, batch)

			Convey("Then nothing is projected", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(len(ps), ShouldEqual, 0)
			})
		})
	})
}
