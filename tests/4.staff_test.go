package tests

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/auth"
	"gother/internal/service"
)

func TestStaffManagement(t *testing.T) {
	Convey("staff roster management", t, func() {
		_ = testDB.Collection("users").Drop(testCtx)
		_ = testDB.Collection("refresh_tokens").Drop(testCtx)
		_ = testDB.Collection("counters").Drop(testCtx)

		admin, err := testServices.Auth.Register(testCtx, testStoreCfg.AdminEmail, "admin-pass", "Admin", "")
		So(err, ShouldBeNil)

		member, err := testServices.Auth.Register(testCtx, "staffer@example.com", "pass-1234", "Staffer", "")
		So(err, ShouldBeNil)

		Convey("a candidate is found by email or serial", func() {
			byEmail, err := testServices.User.FindStaffCandidate(testCtx, "Staffer@Example.com")
			So(err, ShouldBeNil)
			So(byEmail.ID, ShouldEqual, member.UserID)

			bySerial, err := testServices.User.FindStaffCandidate(testCtx, fmt.Sprintf("%d", member.SerialID))
			So(err, ShouldBeNil)
			So(bySerial.ID, ShouldEqual, member.UserID)

			_, err = testServices.User.FindStaffCandidate(testCtx, "nobody@example.com")
			So(err, ShouldEqual, service.ErrUserNotFound)
		})

		Convey("granting permissions promotes to moderator", func() {
			updated, err := testServices.User.SetPermissions(testCtx, member.UserID, []string{"orders", "dashboard"})
			So(err, ShouldBeNil)
			So(updated.Role, ShouldEqual, auth.RoleModerator)
			So(updated.Permissions, ShouldContain, auth.PermOrders)
			So(updated.Permissions, ShouldContain, auth.PermDashboard)

			Convey("an empty set demotes back to a plain user", func() {
				updated, err := testServices.User.SetPermissions(testCtx, member.UserID, nil)
				So(err, ShouldBeNil)
				So(updated.Role, ShouldEqual, auth.RoleUser)
				So(updated.Permissions, ShouldBeEmpty)
			})
		})

		Convey("unknown tags reject the whole request", func() {
			_, err := testServices.User.SetPermissions(testCtx, member.UserID, []string{"orders", "odres"})
			So(err, ShouldEqual, service.ErrUnknownPermission)

			unchanged, err := testServices.UserRepo.FindByID(testCtx, member.UserID)
			So(err, ShouldBeNil)
			So(unchanged.Role, ShouldEqual, auth.RoleUser)
		})

		Convey("the master account is untouchable", func() {
			_, err := testServices.User.SetPermissions(testCtx, admin.UserID, []string{"orders"})
			So(err, ShouldEqual, service.ErrMasterAccount)

			So(testServices.User.SetStatus(testCtx, admin.UserID, auth.UserStatusBlocked), ShouldEqual, service.ErrMasterAccount)
			So(testServices.User.Delete(testCtx, admin.UserID), ShouldEqual, service.ErrMasterAccount)
		})

		Convey("admin cleanup demotes every admin but the master", func() {
			// a rogue admin slipped into the roster
			rogue, err := testServices.Auth.Register(testCtx, "rogue@example.com", "pass-1234", "Rogue", "")
			So(err, ShouldBeNil)
			err = testServices.UserRepo.Update(testCtx, rogue.UserID, bson.M{"$set": bson.M{"role": auth.RoleAdmin}})
			So(err, ShouldBeNil)

			demoted, err := testServices.Registry.CleanAdmins(testCtx)
			So(err, ShouldBeNil)
			So(demoted, ShouldEqual, 1)

			reloaded, err := testServices.UserRepo.FindByID(testCtx, rogue.UserID)
			So(err, ShouldBeNil)
			So(reloaded.Role, ShouldEqual, auth.RoleUser)

			master, err := testServices.UserRepo.FindByID(testCtx, admin.UserID)
			So(err, ShouldBeNil)
			So(master.Role, ShouldEqual, auth.RoleAdmin)
		})

		Convey("wiping the roster spares only the master", func() {
			deleted, err := testServices.Registry.WipeUsers(testCtx)
			So(err, ShouldBeNil)
			So(deleted, ShouldEqual, 1)

			_, err = testServices.UserRepo.FindByID(testCtx, member.UserID)
			So(err, ShouldNotBeNil)

			master, err := testServices.UserRepo.FindByID(testCtx, admin.UserID)
			So(err, ShouldBeNil)
			So(master.Email, ShouldEqual, testStoreCfg.AdminEmail)
		})
	})
}
