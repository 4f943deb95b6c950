package tests

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"gother/internal/model/auth"
	"gother/internal/service"
)

func TestAuthFlows(t *testing.T) {
	Convey("registration and the two login paths", t, func() {
		_ = testDB.Collection("users").Drop(testCtx)
		_ = testDB.Collection("refresh_tokens").Drop(testCtx)
		_ = testDB.Collection("counters").Drop(testCtx)

		reg, err := testServices.Auth.Register(testCtx, "Member@Example.com", "original-pass", "Member", "+111222333")
		So(err, ShouldBeNil)
		So(reg.Email, ShouldEqual, "member@example.com")
		So(reg.SerialID, ShouldBeGreaterThan, testStoreCfg.SerialBase)

		Convey("the email is claimed exactly once", func() {
			_, err := testServices.Auth.Register(testCtx, "member@example.com", "other-pass", "Clone", "")
			So(err, ShouldEqual, service.ErrEmailTaken)
		})

		Convey("email login verifies the primary password", func() {
			result, err := testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldBeNil)
			So(result.AccessToken, ShouldNotBeEmpty)
			So(result.RefreshToken, ShouldNotBeEmpty)
			So(result.TokenType, ShouldEqual, "Bearer")
			So(result.User.SerialID, ShouldEqual, reg.SerialID)

			_, err = testServices.Auth.Login(testCtx, "member@example.com", "wrong")
			So(err, ShouldEqual, service.ErrInvalidPassword)
		})

		Convey("serial login starts out linked to the same credential", func() {
			result, err := testServices.Auth.Login(testCtx, fmt.Sprintf("%d", reg.SerialID), "original-pass")
			So(err, ShouldBeNil)
			So(result.User.Email, ShouldEqual, "member@example.com")
		})

		Convey("re-linking moves only the serial path", func() {
			So(testServices.Registry.ReLinkCredential(testCtx, reg.UserID, "linked-pass"), ShouldBeNil)

			_, err := testServices.Auth.Login(testCtx, fmt.Sprintf("%d", reg.SerialID), "original-pass")
			So(err, ShouldEqual, service.ErrInvalidPassword)

			result, err := testServices.Auth.Login(testCtx, fmt.Sprintf("%d", reg.SerialID), "linked-pass")
			So(err, ShouldBeNil)
			So(result.User.ID, ShouldEqual, reg.UserID)

			// the email path keeps the primary password
			_, err = testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldBeNil)
		})

		Convey("an unregistered serial is rejected", func() {
			_, err := testServices.Auth.Login(testCtx, "999999", "whatever")
			So(err, ShouldEqual, service.ErrSerialNotFound)
		})

		Convey("a reserved master serial falls back to the admin account", func() {
			_, err := testServices.Auth.Register(testCtx, testStoreCfg.AdminEmail, "admin-pass", "Admin", "")
			So(err, ShouldBeNil)

			result, err := testServices.Auth.Login(testCtx, "111", "admin-pass")
			So(err, ShouldBeNil)
			So(result.User.Email, ShouldEqual, testStoreCfg.AdminEmail)
			So(result.User.Role, ShouldEqual, auth.RoleAdmin)
		})

		Convey("a blocked account cannot sign in and loses its sessions", func() {
			result, err := testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldBeNil)

			So(testServices.User.SetStatus(testCtx, reg.UserID, auth.UserStatusBlocked), ShouldBeNil)

			_, err = testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldEqual, service.ErrUserBlocked)

			// the refresh token issued before the block is gone too
			_, err = testServices.Auth.Refresh(testCtx, result.RefreshToken)
			So(err, ShouldNotBeNil)
		})

		Convey("refresh rotates the token pair", func() {
			first, err := testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldBeNil)

			second, err := testServices.Auth.Refresh(testCtx, first.RefreshToken)
			So(err, ShouldBeNil)
			So(second.RefreshToken, ShouldNotEqual, first.RefreshToken)

			// the spent token cannot be replayed
			_, err = testServices.Auth.Refresh(testCtx, first.RefreshToken)
			So(err, ShouldNotBeNil)
		})

		Convey("logout revokes the refresh token", func() {
			result, err := testServices.Auth.Login(testCtx, "member@example.com", "original-pass")
			So(err, ShouldBeNil)

			So(testServices.Auth.Logout(testCtx, result.RefreshToken), ShouldBeNil)

			_, err = testServices.Auth.Refresh(testCtx, result.RefreshToken)
			So(err, ShouldNotBeNil)
		})
	})
}
