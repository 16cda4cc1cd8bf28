package extract

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTitle(t *testing.T) {
	Convey("Title resolution", t, func() {
		So(Plain("Baz").String(), ShouldEqual, "Baz")
		So(SimpleText("Bar").String(), ShouldEqual, "Bar")
		So(Runs("Foo", " and more").String(), ShouldEqual, "Foo")
		So(Runs().String(), ShouldBeEmpty)
		So(Title{}.String(), ShouldBeEmpty)
	})
}

func TestTitleOf(t *testing.T) {
	Convey("titleOf", t, func() {
		Convey("Reads runs, simpleText and plain strings", func() {
			So(titleOf([]byte(`{"title":{"runs":[{"text":"Foo"},{"text":"!"}]}}`)).String(), ShouldEqual, "Foo")
			So(titleOf([]byte(`{"title":{"simpleText":"Bar"}}`)).String(), ShouldEqual, "Bar")
			So(titleOf([]byte(`{"title":"Baz"}`)).String(), ShouldEqual, "Baz")
		})

		Convey("Prefers runs over simpleText", func() {
			So(titleOf([]byte(`{"title":{"simpleText":"Bar","runs":[{"text":"Foo"}]}}`)).String(), ShouldEqual, "Foo")
		})

		Convey("Unescapes JSON strings", func() {
			So(titleOf([]byte(`{"title":"café \"quoted\""}`)).String(), ShouldEqual, `café "quoted"`)
		})

		Convey("Is empty for missing or unexpected shapes", func() {
			So(titleOf([]byte(`{}`)).String(), ShouldBeEmpty)
			So(titleOf([]byte(`{"title":42}`)).String(), ShouldBeEmpty)
			So(titleOf([]byte(`{"title":{"runs":[]}}`)).String(), ShouldBeEmpty)
			So(titleOf([]byte(`{"title":{"runs":"nope"}}`)).String(), ShouldBeEmpty)
		})
	})
}
