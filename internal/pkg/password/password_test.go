package password

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHashAndVerify(t *testing.T) {
	Convey("credentials are verified against the hash, never compared raw", t, func() {
		hash, err := Hash("s3cret-pass")
		So(err, ShouldBeNil)
		So(hash, ShouldNotEqual, "s3cret-pass")

		So(Verify(hash, "s3cret-pass"), ShouldBeTrue)
		So(Verify(hash, "wrong"), ShouldBeFalse)
		So(Verify(hash, ""), ShouldBeFalse)

		Convey("hashing is salted", func() {
			again, err := Hash("s3cret-pass")
			So(err, ShouldBeNil)
			So(again, ShouldNotEqual, hash)
			So(Verify(again, "s3cret-pass"), ShouldBeTrue)
		})
	})
}
