package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/okian/dime/internal/domain/model"
	"github.com/okian/dime/internal/domain/projection"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewProjection(t *testing.T) {
	Convey("Given a computed result", t, func() {
		in := projection.Inputs{PlayerName: "Test Guard", LineAssists: 6}
		res := projection.Result{Base: 5.5, Final: 1.0, Projection: 5.5}
		caps := projection.DefaultParams().Caps

		Convey("When wrapping it in a projection", func() {
			a := model.NewProjection(in, res, caps)
			b := model.NewProjection(in, res, caps)

			Convey("Then it carries a valid, unique id", func() {
				_, err := uuid.Parse(a.ID)
				So(err, ShouldBeNil)
				So(a.ID, ShouldNotEqual, b.ID)
			})

			Convey("And it keeps inputs, result and caps unchanged", func() {
				So(a.Inputs, ShouldResemble, in)
				So(a.Result, ShouldResemble, res)
				So(a.Caps, ShouldResemble, caps)
			})
		})
	})
}
