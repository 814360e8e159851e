package outlier

import (
	"testing"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/synth"
	"github.com/IOVASCON/projeto-csv-super/internal/fakedata"
	. "github.com/smartystreets/goconvey/convey"
)

func value(f field, r *model.KPIRecord) float64 {
	if f.fv != nil {
		return *f.fv(r)
	}
	return float64(*f.iv(r))
}

// changed lists the allow-listed fields whose values differ between a and b.
func changed(a, b *model.KPIRecord) []string {
	var out []string
	for _, f := range allowList {
		if f.present(a) != f.present(b) {
			out = append(out, f.name)
			continue
		}
		if f.present(a) && value(f, a) != value(f, b) {
			out = append(out, f.name)
		}
	}
	return out
}

func TestInject(t *testing.T) {
	src := drift.New(8)
	gen := synth.New(src, fakedata.NewBrazil(src))
	day := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given an injector with probability 1", t, func() {
		in := New(drift.New(1), 1)

		Convey("Then every call mutates exactly one present field into its domain", func() {
			for i := 0; i < 300; i++ {
				seg := []string{"Varejo", "Hotelaria", "TI", "Finanças"}[i%4]
				rec := gen.Synthesize(seg, day, nil)
				before := rec.Clone()

				name, ok := in.Inject(rec)
				So(ok, ShouldBeTrue)
				So(Fields(), ShouldContain, name)

				diff := changed(before, rec)
				So(len(diff), ShouldBeLessThanOrEqualTo, 1)
				if len(diff) == 1 {
					So(diff[0], ShouldEqual, name)
				}

				d, _ := DomainOf(name)
				for _, f := range allowList {
					if f.name == name {
						So(f.present(rec), ShouldBeTrue)
						v := value(f, rec)
						So(v >= d.Min && v <= d.Max, ShouldBeTrue)
					}
				}
			}
		})

		Convey("Then gated fields absent from the record are never chosen", func() {
			for i := 0; i < 200; i++ {
				rec := gen.Synthesize("Finanças", day, nil)
				name, _ := in.Inject(rec)
				So(name, ShouldNotBeIn, []string{"occupancy_rate", "mrr", "arr", "revpar", "product_count", "active_users"})
			}
		})
	})

	Convey("Given an injector with probability 0", t, func() {
		in := New(drift.New(1), 0)

		Convey("Then records are left identical", func() {
			for i := 0; i < 50; i++ {
				rec := gen.Synthesize("Varejo", day, nil)
				before := rec.Clone()
				name, ok := in.Inject(rec)
				So(ok, ShouldBeFalse)
				So(name, ShouldBeEmpty)
				So(rec, ShouldResemble, before)
			}
		})
	})

	Convey("Given the repair domains", t, func() {
		Convey("Then percentages, scales and signed fields are classified", func() {
			d, ok := DomainOf("ctr")
			So(ok, ShouldBeTrue)
			So(d, ShouldResemble, Domain{Min: 0, Max: 100})

			d, _ = DomainOf("nps")
			So(d, ShouldResemble, Domain{Min: -100, Max: 100})

			d, _ = DomainOf("profit")
			So(d.Min < -1e300, ShouldBeTrue)

			d, _ = DomainOf("revenue")
			So(d.Min, ShouldEqual, 1.0)

			_, ok = DomainOf("segment")
			So(ok, ShouldBeFalse)
		})

		Convey("Then counts that may be zero floor at zero", func() {
			for _, name := range []string{"complaints", "leads", "rating_count", "clicks"} {
				d, ok := DomainOf(name)
				So(ok, ShouldBeTrue)
				So(d.Min, ShouldEqual, 0.0)
			}
			d, _ := DomainOf("suppliers")
			So(d.Min, ShouldEqual, 1.0)
		})
	})

	Convey("Given a record with zero complaints and leads", t, func() {
		rec := gen.Synthesize("Varejo", day, nil)
		rec.Complaints = 0
		rec.Leads = 0
		rec.CostPerLead = 0

		Convey("When those fields are scaled up", func() {
			for _, f := range allowList {
				if f.name == "complaints" || f.name == "leads" {
					f.apply(rec, maxFactor)
				}
			}

			Convey("Then they stay zero and cost per lead stays consistent", func() {
				So(rec.Complaints, ShouldEqual, 0)
				So(rec.Leads, ShouldEqual, 0)
				So(rec.CostPerLead, ShouldEqual, 0.0)
			})
		})
	})
}
