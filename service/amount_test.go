package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

func TestUnitAmountFor(t *testing.T) {
	Convey("Pass method with an active pass waives the fare", t, func() {
		So(AmountFor(models.PaymentMethodPass, true, 5000), ShouldEqual, 0)
	})

	Convey("Pass method without an active pass pays the fare", t, func() {
		So(AmountFor(models.PaymentMethodPass, false, 5000), ShouldEqual, 5000)
	})

	Convey("General method pays the fare regardless of pass", t, func() {
		So(AmountFor(models.PaymentMethodGeneral, true, 5000), ShouldEqual, 5000)
		So(AmountFor(models.PaymentMethodGeneral, false, 5000), ShouldEqual, 5000)
	})
}

func TestUnitFareAmount(t *testing.T) {
	Convey("Default fare parses", t, func() {
		cfg, _ := config.Get()

		fare, err := FareAmount(cfg)

		So(err, ShouldBeNil)
		So(fare, ShouldEqual, 5000)
	})

	Convey("Fractional fare is a configuration error", t, func() {
		cfg := config.DefaultConfig()
		cfg.FareAmount = "5000.50"

		_, err := FareAmount(cfg)

		So(err.Error(), ShouldContainSubstring, "must be a whole non-negative number")
	})
}

func TestUnitParseAmountParam(t *testing.T) {
	Convey("Whole amount parses", t, func() {
		amount, err := ParseAmountParam("5000")

		So(err, ShouldBeNil)
		So(amount, ShouldEqual, 5000)
	})

	Convey("Amount with trailing zero decimals parses", t, func() {
		amount, err := ParseAmountParam("5000.00")

		So(err, ShouldBeNil)
		So(amount, ShouldEqual, 5000)
	})

	Convey("Negative amount is rejected", t, func() {
		_, err := ParseAmountParam("-5000")

		So(err.Error(), ShouldContainSubstring, "must be a whole non-negative number")
	})

	Convey("Fractional amount is rejected", t, func() {
		_, err := ParseAmountParam("5000.99")

		So(err.Error(), ShouldContainSubstring, "must be a whole non-negative number")
	})

	Convey("Garbage amount is rejected", t, func() {
		_, err := ParseAmountParam("fivethousand")

		So(err.Error(), ShouldContainSubstring, "format incorrect")
	})
}
