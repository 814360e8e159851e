package segment_test

import (
	"testing"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/segment"
	. "github.com/smartystreets/goconvey/convey"
)

func TestActivationTable(t *testing.T) {
	Convey("Given the segment activation table", t, func() {
		Convey("Hotelaria only activates hospitality among segment-specific groups", func() {
			So(segment.Active(segment.Hotelaria, segment.Hospitality), ShouldBeTrue)
			So(segment.Active(segment.Hotelaria, segment.Inventory), ShouldBeFalse)
			So(segment.Active(segment.Hotelaria, segment.Plan), ShouldBeFalse)
		})

		Convey("Varejo activates inventory, sales force and shipping", func() {
			set := segment.For(segment.Varejo)
			So(set.Has(segment.Inventory), ShouldBeTrue)
			So(set.Has(segment.SalesForce), ShouldBeTrue)
			So(set.Has(segment.Shipping), ShouldBeTrue)
			So(set.Has(segment.Recurring), ShouldBeFalse)
		})

		Convey("Serviços has sales force but no shipping", func() {
			So(segment.Active(segment.Servicos, segment.SalesForce), ShouldBeTrue)
			So(segment.Active(segment.Servicos, segment.Shipping), ShouldBeFalse)
			So(segment.Active(segment.Servicos, segment.Plan), ShouldBeTrue)
		})

		Convey("TI carries recurring revenue, usage, service type and plan", func() {
			set := segment.For(segment.TI)
			for _, g := range []segment.Group{segment.Recurring, segment.Usage, segment.ServiceType, segment.Plan} {
				So(set.Has(g), ShouldBeTrue)
			}
		})

		Convey("Aplicativo only carries usage", func() {
			So(segment.Active(segment.Aplicativo, segment.Usage), ShouldBeTrue)
			So(segment.Active(segment.Aplicativo, segment.Recurring), ShouldBeFalse)
		})

		Convey("Segments missing from the table get nothing", func() {
			for _, seg := range []string{"Finanças", "Aviação", "Metalurgia", ""} {
				for _, g := range segment.AllGroups() {
					So(segment.Active(seg, g), ShouldBeFalse)
				}
			}
		})

		Convey("Groups lists a segment's groups in declaration order", func() {
			So(segment.Groups(segment.Varejo), ShouldResemble,
				[]segment.Group{segment.Inventory, segment.SalesForce, segment.Shipping})
			So(segment.Groups("Finanças"), ShouldBeEmpty)
		})

		Convey("Groups have readable names", func() {
			So(segment.SalesForce.String(), ShouldEqual, "sales_force")
			So(segment.Group(99).String(), ShouldEqual, "unknown")
		})
	})
}
