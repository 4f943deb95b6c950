package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSlugify(t *testing.T) {
	Convey("category slugs", t, func() {
		So(slugify("Party Gifts"), ShouldEqual, "party-gifts")
		So(slugify("  Lunar   New Year  "), ShouldEqual, "lunar-new-year")
		So(slugify("vip"), ShouldEqual, "vip")
		So(slugify(""), ShouldEqual, "")
	})
}
