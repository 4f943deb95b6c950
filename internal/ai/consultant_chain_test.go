package ai

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseConsultOutput(t *testing.T) {
	Convey("model output parsing", t, func() {
		Convey("a clean JSON object parses", func() {
			out, err := parseConsultOutput(`{"reply":"try the fireworks gift","product_ids":["p1","p2"]}`)
			So(err, ShouldBeNil)
			So(out.Reply, ShouldEqual, "try the fireworks gift")
			So(out.ProductIDs, ShouldResemble, []string{"p1", "p2"})
		})

		Convey("markdown fences and prose around the object are tolerated", func() {
			out, err := parseConsultOutput("Sure, here you go:\n```json\n{\"reply\":\"ok\",\"product_ids\":[]}\n```\n")
			So(err, ShouldBeNil)
			So(out.Reply, ShouldEqual, "ok")
			So(out.ProductIDs, ShouldBeEmpty)
		})

		Convey("output without a JSON object is rejected", func() {
			_, err := parseConsultOutput("I recommend the fireworks gift")
			So(err, ShouldNotBeNil)
		})

		Convey("an object without a reply is rejected", func() {
			_, err := parseConsultOutput(`{"product_ids":["p1"]}`)
			So(err, ShouldNotBeNil)
		})

		Convey("malformed JSON is rejected", func() {
			_, err := parseConsultOutput(`{"reply": "unterminated`)
			So(err, ShouldNotBeNil)
		})
	})
}
