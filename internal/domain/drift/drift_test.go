package drift_test

import (
	"testing"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSafeRangeInt(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := drift.New(7)

		Convey("When bounds are ordered or swapped", func() {
			Convey("Then both orders stay within [2,5]", func() {
				for i := 0; i < 500; i++ {
					a := src.SafeRangeInt(2, 5)
					b := src.SafeRangeInt(5, 2)
					So(a, ShouldBeBetweenOrEqual, 2, 5)
					So(b, ShouldBeBetweenOrEqual, 2, 5)
				}
			})
		})

		Convey("When bounds are fractional and inverted", func() {
			Convey("Then the result is in the truncated interval [3,4]", func() {
				for i := 0; i < 500; i++ {
					So(src.SafeRangeInt(3.9, 3.1), ShouldEqual, 3)
					So(src.SafeRangeInt(3.1, 4.9), ShouldBeBetweenOrEqual, 3, 4)
				}
			})
		})

		Convey("When bounds are equal", func() {
			Convey("Then the single value is returned", func() {
				So(src.SafeRangeInt(9, 9), ShouldEqual, 9)
				So(src.SafeRangeInt(-3.7, -3.2), ShouldEqual, -3)
			})
		})
	})
}

func TestDistributions(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := drift.New(11)

		Convey("Uniform stays within its bounds", func() {
			for i := 0; i < 1000; i++ {
				So(src.Uniform(60, 100), ShouldBeBetweenOrEqual, 60, 100)
			}
		})

		Convey("LogNormal is strictly positive", func() {
			for i := 0; i < 1000; i++ {
				So(src.LogNormal(4.6, 0.8), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Bernoulli honours the degenerate probabilities", func() {
			for i := 0; i < 200; i++ {
				So(src.Bernoulli(0), ShouldBeFalse)
				So(src.Bernoulli(1), ShouldBeTrue)
			}
		})

		Convey("Pick returns one of the options", func() {
			opts := []string{"a", "b", "c"}
			for i := 0; i < 100; i++ {
				So(opts, ShouldContain, src.Pick(opts))
			}
			So(src.Pick(nil), ShouldEqual, "")
		})
	})

	Convey("Given two sources with the same seed", t, func() {
		a, b := drift.New(99), drift.New(99)

		Convey("Then they produce the same stream", func() {
			for i := 0; i < 50; i++ {
				So(a.Normal(0, 1), ShouldEqual, b.Normal(0, 1))
			}
		})
	})
}

func TestDateBetween(t *testing.T) {
	Convey("Given a date window", t, func() {
		src := drift.New(3)
		start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)

		Convey("Then sampled days fall inside the inclusive window", func() {
			seenEnd := false
			for i := 0; i < 2000; i++ {
				d := src.DateBetween(start, end)
				So(d.Before(start), ShouldBeFalse)
				So(d.After(end), ShouldBeFalse)
				if d.Equal(end) {
					seenEnd = true
				}
			}
			So(seenEnd, ShouldBeTrue)
		})

		Convey("Then a one-day window always returns that day", func() {
			So(src.DateBetween(start, start).Equal(start), ShouldBeTrue)
		})

		Convey("Then an inverted window is swapped", func() {
			d := src.DateBetween(end, start)
			So(d.Before(start), ShouldBeFalse)
			So(d.After(end), ShouldBeFalse)
		})
	})
}

func TestRounding(t *testing.T) {
	Convey("Given values needing rounding", t, func() {
		So(drift.Round2(1.005), ShouldEqual, 1.01)
		So(drift.Round2(-2.675), ShouldEqual, -2.68)
		So(drift.Round3(0.98765), ShouldEqual, 0.988)
		So(drift.Round1(7.46), ShouldEqual, 7.5)
		So(drift.Clamp(120, 0, 100), ShouldEqual, 100.0)
		So(drift.ClampInt(-4, 1, 5), ShouldEqual, 1)
		So(drift.Ratio(10, 0), ShouldEqual, 0.0)
		So(drift.Ratio(10, 4), ShouldEqual, 2.5)
	})
}
