package tests

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/store"
	"gother/internal/service"
)

func TestCatalogManagement(t *testing.T) {
	Convey("catalog sections, banners and settings", t, func() {
		_ = testDB.Collection("products").Drop(testCtx)
		_ = testDB.Collection("categories").Drop(testCtx)
		_ = testDB.Collection("banners").Drop(testCtx)
		_ = testDB.Collection("settings").Drop(testCtx)

		Convey("categories are keyed by a slug of their name", func() {
			category := &store.Category{Name: "Party Gifts", NameAr: "هدايا الحفلات"}
			So(testServices.Catalog.CreateCategory(testCtx, category), ShouldBeNil)
			So(category.ID, ShouldEqual, "party-gifts")

			listed, err := testServices.Catalog.ListCategories(testCtx)
			So(err, ShouldBeNil)
			So(len(listed), ShouldEqual, 1)

			Convey("a nameless category is rejected", func() {
				So(testServices.Catalog.CreateCategory(testCtx, &store.Category{}), ShouldNotBeNil)
			})

			Convey("category filters narrow the product list", func() {
				So(testServices.Catalog.CreateProduct(testCtx, &store.Product{
					Name: "Confetti", NameAr: "قصاصات", Category: "party-gifts", Price: 2,
				}), ShouldBeNil)
				So(testServices.Catalog.CreateProduct(testCtx, &store.Product{
					Name: "Rose", NameAr: "وردة", Category: "romance", Price: 3,
				}), ShouldBeNil)

				party, err := testServices.Catalog.ListProducts(testCtx, "party-gifts")
				So(err, ShouldBeNil)
				So(len(party), ShouldEqual, 1)
				So(party[0].Name, ShouldEqual, "Confetti")

				all, err := testServices.Catalog.ListProducts(testCtx, "")
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 2)
			})
		})

		Convey("product validation", func() {
			err := testServices.Catalog.CreateProduct(testCtx, &store.Product{Price: 5})
			So(err, ShouldEqual, service.ErrInvalidProduct)

			err = testServices.Catalog.CreateProduct(testCtx, &store.Product{Name: "Negative", Price: -1})
			So(err, ShouldEqual, service.ErrInvalidProduct)

			err = testServices.Catalog.CreateProduct(testCtx, &store.Product{
				Name: "Odd", Price: 1, Formats: []store.Format{"GIF"},
			})
			So(err, ShouldEqual, service.ErrInvalidProduct)

			Convey("an ID is generated when omitted", func() {
				product := &store.Product{Name: "Auto", NameAr: "تلقائي", Price: 1}
				So(testServices.Catalog.CreateProduct(testCtx, product), ShouldBeNil)
				So(product.ID, ShouldNotBeEmpty)
			})

			Convey("updates reject unknown products", func() {
				err := testServices.Catalog.UpdateProduct(testCtx, "nope", bson.M{"$set": bson.M{"price": 9.0}})
				So(err, ShouldEqual, service.ErrProductNotFound)
			})
		})

		Convey("banners require a URL", func() {
			So(testServices.Catalog.CreateBanner(testCtx, &store.Banner{}), ShouldNotBeNil)

			banner := &store.Banner{URL: "https://cdn.example.com/sale.png", Link: "/category/party-gifts"}
			So(testServices.Catalog.CreateBanner(testCtx, banner), ShouldBeNil)
			So(banner.ID, ShouldNotBeEmpty)

			listed, err := testServices.Catalog.ListBanners(testCtx)
			So(err, ShouldBeNil)
			So(len(listed), ShouldEqual, 1)

			So(testServices.Catalog.DeleteBanner(testCtx, banner.ID), ShouldBeNil)
		})

		Convey("settings are a singleton with an empty default", func() {
			empty, err := testServices.Catalog.GetSettings(testCtx)
			So(err, ShouldBeNil)
			So(empty.SiteName, ShouldBeEmpty)

			So(testServices.Catalog.UpdateSettings(testCtx, &store.Settings{
				SiteName: "Gother",
				WhatsApp: "+971500000000",
			}), ShouldBeNil)

			loaded, err := testServices.Catalog.GetSettings(testCtx)
			So(err, ShouldBeNil)
			So(loaded.SiteName, ShouldEqual, "Gother")

			Convey("a second update replaces, not duplicates", func() {
				So(testServices.Catalog.UpdateSettings(testCtx, &store.Settings{SiteName: "Gother 2"}), ShouldBeNil)

				again, err := testServices.Catalog.GetSettings(testCtx)
				So(err, ShouldBeNil)
				So(again.SiteName, ShouldEqual, "Gother 2")

				count, err := testDB.Collection("settings").CountDocuments(testCtx, bson.M{})
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})
	})
}
