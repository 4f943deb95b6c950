package tests

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/auth"
	"gother/internal/model/store"
	"gother/internal/service"
)

func TestOrderFlow(t *testing.T) {
	Convey("the purchase flow", t, func() {
		_ = testDB.Collection("users").Drop(testCtx)
		_ = testDB.Collection("counters").Drop(testCtx)
		_ = testDB.Collection("products").Drop(testCtx)
		_ = testDB.Collection("orders").Drop(testCtx)

		fireworks := &store.Product{
			ID:         "gift-fireworks",
			Name:       "Fireworks",
			NameAr:     "ألعاب نارية",
			Category:   "celebration",
			Price:      12.5,
			PreviewURL: "https://cdn.example.com/fireworks.png",
			Formats:    []store.Format{store.FormatSVGA, store.FormatMP4},
			Level:      store.LevelPremium,
		}
		rose := &store.Product{
			ID:         "gift-rose",
			Name:       "Rose",
			NameAr:     "وردة",
			Category:   "romance",
			Price:      3,
			PreviewURL: "https://cdn.example.com/rose.png",
			Formats:    []store.Format{store.FormatVAP},
		}
		So(testServices.Catalog.CreateProduct(testCtx, fireworks), ShouldBeNil)
		So(testServices.Catalog.CreateProduct(testCtx, rose), ShouldBeNil)

		reg, err := testServices.Auth.Register(testCtx, "buyer@example.com", "pass-1234", "Buyer", "")
		So(err, ShouldBeNil)
		buyer, err := testServices.UserRepo.FindByID(testCtx, reg.UserID)
		So(err, ShouldBeNil)

		Convey("placing an order snapshots products and computes the total", func() {
			order, err := testServices.Order.Place(testCtx, buyer, "Buyer", "+971500000000", "gift wrap please", []service.OrderLine{
				{ProductID: "gift-fireworks", Quantity: 2},
				{ProductID: "gift-rose", Quantity: 1},
			})
			So(err, ShouldBeNil)
			So(strings.HasPrefix(order.ID, "ORD-"), ShouldBeTrue)
			So(order.Status, ShouldEqual, store.OrderStatusPending)
			So(order.Total, ShouldEqual, 28)
			So(len(order.Items), ShouldEqual, 2)

			Convey("the snapshot survives later catalog edits", func() {
				err := testServices.Catalog.UpdateProduct(testCtx, "gift-fireworks", bson.M{"$set": bson.M{"price": 99.0}})
				So(err, ShouldBeNil)

				reloaded, err := testServices.Order.Get(testCtx, order.ID, buyer, false)
				So(err, ShouldBeNil)
				So(reloaded.Total, ShouldEqual, 28)
				So(reloaded.Items[0].Price, ShouldEqual, 12.5)
			})

			Convey("the owner sees it, a stranger does not", func() {
				otherReg, err := testServices.Auth.Register(testCtx, "stranger@example.com", "pass-1234", "Stranger", "")
				So(err, ShouldBeNil)
				stranger, err := testServices.UserRepo.FindByID(testCtx, otherReg.UserID)
				So(err, ShouldBeNil)

				_, err = testServices.Order.Get(testCtx, order.ID, stranger, false)
				So(err, ShouldEqual, service.ErrNotOrderOwner)

				// staff bypass ownership
				got, err := testServices.Order.Get(testCtx, order.ID, stranger, true)
				So(err, ShouldBeNil)
				So(got.ID, ShouldEqual, order.ID)
			})

			Convey("status moves through the lifecycle", func() {
				So(testServices.Order.SetStatus(testCtx, order.ID, store.OrderStatusCompleted), ShouldBeNil)

				reloaded, err := testServices.Order.Get(testCtx, order.ID, buyer, false)
				So(err, ShouldBeNil)
				So(reloaded.Status, ShouldEqual, store.OrderStatusCompleted)

				So(testServices.Order.SetStatus(testCtx, order.ID, store.OrderStatus("shipped")), ShouldNotBeNil)
			})
		})

		Convey("an unknown product rejects the whole order", func() {
			_, err := testServices.Order.Place(testCtx, buyer, "Buyer", "", "", []service.OrderLine{
				{ProductID: "gift-fireworks", Quantity: 1},
				{ProductID: "gift-ghost", Quantity: 1},
			})
			So(err, ShouldEqual, service.ErrProductNotFound)
		})

		Convey("quantity and emptiness are validated", func() {
			_, err := testServices.Order.Place(testCtx, buyer, "Buyer", "", "", nil)
			So(err, ShouldEqual, service.ErrEmptyOrder)

			_, err = testServices.Order.Place(testCtx, buyer, "Buyer", "", "", []service.OrderLine{
				{ProductID: "gift-rose", Quantity: 0},
			})
			So(err, ShouldEqual, service.ErrInvalidQuantity)
		})

		Convey("a frozen account browses but cannot buy", func() {
			So(testServices.User.SetStatus(testCtx, buyer.ID, auth.UserStatusFrozen), ShouldBeNil)
			frozen, err := testServices.UserRepo.FindByID(testCtx, buyer.ID)
			So(err, ShouldBeNil)

			products, err := testServices.Catalog.ListProducts(testCtx, "")
			So(err, ShouldBeNil)
			So(len(products), ShouldEqual, 2)

			_, err = testServices.Order.Place(testCtx, frozen, "Buyer", "", "", []service.OrderLine{
				{ProductID: "gift-rose", Quantity: 1},
			})
			So(err, ShouldEqual, service.ErrAccountReadOnly)
		})
	})
}
