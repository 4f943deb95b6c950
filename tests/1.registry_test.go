package tests

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/auth"
	"gother/internal/service"
)

func TestSerialRegistry(t *testing.T) {
	Convey("serial ID registry", t, func() {
		_ = testDB.Collection("users").Drop(testCtx)
		_ = testDB.Collection("counters").Drop(testCtx)

		Convey("allocation starts above the base and stays sequential", func() {
			first, err := testServices.Registry.AllocateSerial(testCtx)
			So(err, ShouldBeNil)
			So(first, ShouldEqual, testStoreCfg.SerialBase+1)

			second, err := testServices.Registry.AllocateSerial(testCtx)
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first+1)
		})

		Convey("the counter is seeded past hand-edited rosters", func() {
			reg, err := testServices.Auth.Register(testCtx, "seeded@example.com", "pass-1234", "Seeded", "")
			So(err, ShouldBeNil)

			// simulate a restored roster with a high serial on record
			err = testServices.UserRepo.Update(testCtx, reg.UserID, bson.M{"$set": bson.M{"serial_id": int64(5000)}})
			So(err, ShouldBeNil)

			next, err := testServices.Registry.AllocateSerial(testCtx)
			So(err, ShouldBeNil)
			So(next, ShouldBeGreaterThan, 5000)
		})

		Convey("manual reassignment", func() {
			a, err := testServices.Auth.Register(testCtx, "holder@example.com", "pass-1234", "Holder", "")
			So(err, ShouldBeNil)
			b, err := testServices.Auth.Register(testCtx, "mover@example.com", "pass-1234", "Mover", "")
			So(err, ShouldBeNil)

			Convey("a free serial is accepted", func() {
				So(testServices.Registry.ReassignSerial(testCtx, b.UserID, 7777), ShouldBeNil)

				moved, err := testServices.UserRepo.FindByID(testCtx, b.UserID)
				So(err, ShouldBeNil)
				So(moved.SerialID, ShouldEqual, 7777)
			})

			Convey("a serial held by someone else is rejected", func() {
				err := testServices.Registry.ReassignSerial(testCtx, b.UserID, a.SerialID)
				So(err, ShouldEqual, service.ErrSerialTaken)
			})

			Convey("reserved master serials are rejected", func() {
				So(testServices.Registry.ReassignSerial(testCtx, b.UserID, 1), ShouldEqual, service.ErrSerialReserved)
				So(testServices.Registry.ReassignSerial(testCtx, b.UserID, 111), ShouldEqual, service.ErrSerialReserved)
			})

			Convey("non-positive serials are rejected", func() {
				So(testServices.Registry.ReassignSerial(testCtx, b.UserID, 0), ShouldNotBeNil)
			})
		})

		Convey("master sync repairs the reserved end of the number space", func() {
			admin, err := testServices.Auth.Register(testCtx, testStoreCfg.AdminEmail, "admin-pass", "Admin", "")
			So(err, ShouldBeNil)
			So(admin.SerialID, ShouldEqual, testStoreCfg.MasterSerialID())

			squatter, err := testServices.Auth.Register(testCtx, "squatter@example.com", "pass-1234", "Squatter", "")
			So(err, ShouldBeNil)

			// knock the admin off the master serial and park the squatter on
			// the other reserved value
			err = testServices.UserRepo.Update(testCtx, admin.UserID, bson.M{"$set": bson.M{"serial_id": int64(4242), "role": auth.RoleUser}})
			So(err, ShouldBeNil)
			err = testServices.UserRepo.Update(testCtx, squatter.UserID, bson.M{"$set": bson.M{"serial_id": int64(111), "role": auth.RoleAdmin}})
			So(err, ShouldBeNil)

			result, err := testServices.Registry.SyncMaster(testCtx)
			So(err, ShouldBeNil)
			So(result.AdminFixed, ShouldEqual, 1)
			So(result.Evicted, ShouldEqual, 1)

			fixed, err := testServices.UserRepo.FindByID(testCtx, admin.UserID)
			So(err, ShouldBeNil)
			So(fixed.SerialID, ShouldEqual, testStoreCfg.MasterSerialID())
			So(fixed.Role, ShouldEqual, auth.RoleAdmin)

			evicted, err := testServices.UserRepo.FindByID(testCtx, squatter.UserID)
			So(err, ShouldBeNil)
			So(testStoreCfg.IsMasterSerial(evicted.SerialID), ShouldBeFalse)
			So(evicted.Role, ShouldEqual, auth.RoleUser)
		})
	})
}
