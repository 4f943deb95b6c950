package store

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOrderComputeTotal(t *testing.T) {
	Convey("order totals come from the item snapshots", t, func() {
		order := &Order{
			Items: []OrderItem{
				{Product: Product{ID: "p1", Price: 10.5}, Quantity: 2},
				{Product: Product{ID: "p2", Price: 4}, Quantity: 1},
			},
		}
		So(order.ComputeTotal(), ShouldEqual, 25)

		Convey("an empty order totals zero", func() {
			So((&Order{}).ComputeTotal(), ShouldEqual, 0)
		})
	})
}

func TestOrderStatusIsValid(t *testing.T) {
	Convey("order status is a closed set", t, func() {
		So(OrderStatusPending.IsValid(), ShouldBeTrue)
		So(OrderStatusCompleted.IsValid(), ShouldBeTrue)
		So(OrderStatusCancelled.IsValid(), ShouldBeTrue)
		So(OrderStatus("shipped").IsValid(), ShouldBeFalse)
		So(OrderStatus("").IsValid(), ShouldBeFalse)
	})
}

func TestFormatIsValid(t *testing.T) {
	Convey("deliverable formats are a closed set", t, func() {
		for _, f := range []Format{FormatSVGA, FormatVAP, FormatMP4, FormatJSON, FormatPAG} {
			So(f.IsValid(), ShouldBeTrue)
		}
		So(Format("GIF").IsValid(), ShouldBeFalse)
	})
}
