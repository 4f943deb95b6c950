package jwt

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestJWTRoundTrip(t *testing.T) {
	Convey("access token round trip", t, func() {
		j := NewJWT("test-secret", time.Hour)

		token, err := j.GenerateToken("user-1", 1001, "moderator")
		So(err, ShouldBeNil)
		So(token, ShouldNotBeEmpty)

		claims, err := j.ValidateToken(token)
		So(err, ShouldBeNil)
		So(claims.UserID, ShouldEqual, "user-1")
		So(claims.SerialID, ShouldEqual, 1001)
		So(claims.Role, ShouldEqual, "moderator")

		Convey("a different secret rejects the token", func() {
			other := NewJWT("other-secret", time.Hour)
			_, err := other.ValidateToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("an expired token is reported as expired", func() {
			short := NewJWT("test-secret", -time.Minute)
			expired, err := short.GenerateToken("user-1", 1001, "user")
			So(err, ShouldBeNil)

			_, err = j.ValidateToken(expired)
			So(err, ShouldEqual, ErrExpiredToken)
		})

		Convey("garbage is invalid", func() {
			_, err := j.ValidateToken("not.a.token")
			So(err, ShouldEqual, ErrInvalidToken)
		})
	})
}

func TestGenerateRefreshToken(t *testing.T) {
	Convey("refresh tokens are unique opaque hex", t, func() {
		a := GenerateRefreshToken()
		So(len(a), ShouldEqual, 64)

		b := GenerateRefreshToken()
		So(a, ShouldNotEqual, b)
	})
}
