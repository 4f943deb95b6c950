package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSerial(t *testing.T) {
	Convey("login identifier classification", t, func() {
		Convey("all-digit identifiers take the serial path", func() {
			serial, numeric := parseSerial("1001")
			So(numeric, ShouldBeTrue)
			So(serial, ShouldEqual, 1001)

			serial, numeric = parseSerial("1")
			So(numeric, ShouldBeTrue)
			So(serial, ShouldEqual, 1)
		})

		Convey("emails and mixed strings take the email path", func() {
			_, numeric := parseSerial("admin@1gother.com")
			So(numeric, ShouldBeFalse)

			_, numeric = parseSerial("1001x")
			So(numeric, ShouldBeFalse)

			_, numeric = parseSerial("")
			So(numeric, ShouldBeFalse)
		})

		Convey("non-positive numbers are not serials", func() {
			_, numeric := parseSerial("0")
			So(numeric, ShouldBeFalse)

			_, numeric = parseSerial("-5")
			So(numeric, ShouldBeFalse)
		})
	})
}
