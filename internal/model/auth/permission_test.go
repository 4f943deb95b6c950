package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePermissions(t *testing.T) {
	Convey("ParsePermissions enforces the closed tag set", t, func() {
		Convey("known tags parse in order", func() {
			perms, ok := ParsePermissions([]string{"orders", "users", "settings"})
			So(ok, ShouldBeTrue)
			So(perms, ShouldResemble, []Permission{PermOrders, PermUsers, PermSettings})
		})

		Convey("an unknown tag rejects the whole list", func() {
			perms, ok := ParsePermissions([]string{"orders", "odres"})
			So(ok, ShouldBeFalse)
			So(perms, ShouldBeNil)
		})

		Convey("an empty list is fine and means no access", func() {
			perms, ok := ParsePermissions(nil)
			So(ok, ShouldBeTrue)
			So(perms, ShouldHaveLength, 0)
		})
	})
}

func TestRoleAndStatusValidity(t *testing.T) {
	Convey("role and status enumerations are closed", t, func() {
		So(RoleAdmin.IsValid(), ShouldBeTrue)
		So(RoleModerator.IsValid(), ShouldBeTrue)
		So(RoleUser.IsValid(), ShouldBeTrue)
		So(UserRole("editor").IsValid(), ShouldBeFalse)

		So(UserStatusActive.IsValid(), ShouldBeTrue)
		So(UserStatusFrozen.IsValid(), ShouldBeTrue)
		So(UserStatusBlocked.IsValid(), ShouldBeTrue)
		So(UserStatus("banned").IsValid(), ShouldBeFalse)
	})
}
