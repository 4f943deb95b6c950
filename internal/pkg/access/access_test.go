package access

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"gother/internal/model/auth"
)

func TestResolver_IsMaster(t *testing.T) {
	Convey("IsMaster honors both reserved serial IDs and the admin role", t, func() {
		r := NewResolver([]int64{1, 111})

		Convey("serial ID 1 is master regardless of stored role", func() {
			So(r.IsMaster(&auth.User{SerialID: 1, Role: auth.RoleUser}), ShouldBeTrue)
		})

		Convey("serial ID 111 is master as well", func() {
			So(r.IsMaster(&auth.User{SerialID: 111, Role: auth.RoleUser}), ShouldBeTrue)
		})

		Convey("stored admin role is master under any serial", func() {
			So(r.IsMaster(&auth.User{SerialID: 2042, Role: auth.RoleAdmin}), ShouldBeTrue)
		})

		Convey("ordinary accounts are not master", func() {
			So(r.IsMaster(&auth.User{SerialID: 2042, Role: auth.RoleUser}), ShouldBeFalse)
			So(r.IsMaster(&auth.User{SerialID: 2042, Role: auth.RoleModerator}), ShouldBeFalse)
		})

		Convey("nil profile is not master", func() {
			So(r.IsMaster(nil), ShouldBeFalse)
		})
	})
}

func TestResolver_HasAccess(t *testing.T) {
	Convey("HasAccess gates admin features", t, func() {
		r := NewResolver([]int64{1, 111})

		Convey("a master passes every tag regardless of its permission set", func() {
			master := &auth.User{SerialID: 1, Role: auth.RoleUser}
			for _, p := range auth.AllPermissions {
				So(r.HasAccess(master, p), ShouldBeTrue)
			}
		})

		Convey("a moderator is limited to its explicit set", func() {
			mod := &auth.User{
				SerialID:    2001,
				Role:        auth.RoleModerator,
				Permissions: []auth.Permission{auth.PermOrders},
			}
			So(r.HasAccess(mod, auth.PermOrders), ShouldBeTrue)
			So(r.HasAccess(mod, auth.PermSettings), ShouldBeFalse)
		})

		Convey("a moderator without a permission set has no access", func() {
			mod := &auth.User{SerialID: 2002, Role: auth.RoleModerator}
			So(r.HasAccess(mod, auth.PermOrders), ShouldBeFalse)
		})

		Convey("a plain user is denied even with stray permissions", func() {
			u := &auth.User{
				SerialID:    2003,
				Role:        auth.RoleUser,
				Permissions: []auth.Permission{auth.PermOrders},
			}
			So(r.HasAccess(u, auth.PermOrders), ShouldBeFalse)
		})

		Convey("staff management stays master-only", func() {
			mod := &auth.User{
				SerialID:    2004,
				Role:        auth.RoleModerator,
				Permissions: auth.AllPermissions,
			}
			So(r.CanManageStaff(mod), ShouldBeFalse)
			So(r.CanManageStaff(&auth.User{SerialID: 111}), ShouldBeTrue)
		})
	})
}

func TestResolver_EffectiveRole(t *testing.T) {
	Convey("EffectiveRole promotes masters to admin", t, func() {
		r := NewResolver([]int64{1, 111})

		So(r.EffectiveRole(&auth.User{SerialID: 1, Role: auth.RoleUser}), ShouldEqual, auth.RoleAdmin)
		So(r.EffectiveRole(&auth.User{SerialID: 2042, Role: auth.RoleModerator}), ShouldEqual, auth.RoleModerator)
		So(r.EffectiveRole(&auth.User{SerialID: 2042, Role: auth.RoleUser}), ShouldEqual, auth.RoleUser)
	})
}

func TestResolver_DefaultTab(t *testing.T) {
	Convey("DefaultTab picks the landing tab for an admin session", t, func() {
		r := NewResolver([]int64{1, 111})

		Convey("masters land on the dashboard", func() {
			So(r.DefaultTab(&auth.User{SerialID: 1}), ShouldEqual, auth.PermDashboard)
		})

		Convey("a moderator with the dashboard tag lands on it", func() {
			mod := &auth.User{
				Role:        auth.RoleModerator,
				Permissions: []auth.Permission{auth.PermOrders, auth.PermDashboard},
			}
			So(r.DefaultTab(mod), ShouldEqual, auth.PermDashboard)
		})

		Convey("a moderator without the dashboard lands on its first tag", func() {
			mod := &auth.User{
				Role:        auth.RoleModerator,
				Permissions: []auth.Permission{auth.PermOrders, auth.PermUsers},
			}
			So(r.DefaultTab(mod), ShouldEqual, auth.PermOrders)
		})

		Convey("no permissions at all falls back to the dashboard", func() {
			So(r.DefaultTab(&auth.User{Role: auth.RoleModerator}), ShouldEqual, auth.PermDashboard)
		})
	})
}
