package extract

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidharvest/vidharvest/video"
)

func scriptPage(scripts ...string) *Page {
	html := "<html><head>"
	for _, s := range scripts {
		html += "<script>" + s + "</script>"
	}
	return NewPage(html + "</head><body></body></html>")
}

func titles(videos []video.Video) []string {
	return lo.Map(videos, func(v video.Video, _ int) string { return v.Title })
}

func ids(videos []video.Video) []string {
	return lo.Map(videos, func(v video.Video, _ int) string { return v.ID })
}

func TestEmbedded(t *testing.T) {
	Convey("Given the embedded-data strategy", t, func() {
		strategy := NewEmbedded(DefaultMarker, DefaultRenderers(), DefaultMaxDepth)

		Convey("It extracts a single renderer from a var assignment", func() {
			page := scriptPage(`var ytInitialData = {"...":[{"videoRenderer":{"videoId":"dQw4w9WgXcQ","title":{"simpleText":"Example"}}}]};`)
			videos, ok := strategy.Extract(page).Get()
			So(ok, ShouldBeTrue)
			So(videos, ShouldResemble, []video.Video{video.New("dQw4w9WgXcQ", "Example")})
		})

		Convey("It resolves every title representation", func() {
			page := scriptPage(`var ytInitialData = {"items":[
				{"videoRenderer":{"videoId":"aaaaaaaaaaa","title":{"runs":[{"text":"Foo"}]}}},
				{"videoRenderer":{"videoId":"bbbbbbbbbbb","title":{"simpleText":"Bar"}}},
				{"videoRenderer":{"videoId":"ccccccccccc","title":"Baz"}}
			]};`)
			videos := strategy.Extract(page).OrEmpty()
			So(titles(videos), ShouldResemble, []string{"Foo", "Bar", "Baz"})
			So(ids(videos), ShouldResemble, []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"})
		})

		Convey("It walks nested objects and arrays in document order", func() {
			page := scriptPage(`window["ytInitialData"] = {
				"a":[
					{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"one"}},
					{"b":{"deeper":[[{"videoRenderer":{"videoId":"BBBBBBBBBBB","title":"two"}}]]}}
				],
				"c":{"gridVideoRenderer":{"videoId":"CCCCCCCCCCC","title":{"runs":[{"text":"three"},{"text":" more"}]}}}
			};`)
			videos := strategy.Extract(page).OrEmpty()
			So(titles(videos), ShouldResemble, []string{"one", "two", "three"})
		})

		Convey("It keeps duplicates for the dedup stage", func() {
			page := scriptPage(`ytInitialData = {"x":[
				{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"one"}},
				{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"again"}}
			]};`)
			So(titles(strategy.Extract(page).OrEmpty()), ShouldResemble, []string{"one", "again"})
		})

		Convey("It falls through to a later renderer key on the same node", func() {
			page := scriptPage(`var ytInitialData = {"x":[
				{"videoRenderer":"not an object","gridVideoRenderer":{"videoId":"AAAAAAAAAAA","title":"grid"}},
				{"videoRenderer":{"videoId":"short","title":"bad"},"gridVideoRenderer":{"videoId":"BBBBBBBBBBB","title":"grid two"}}
			]};`)
			So(titles(strategy.Extract(page).OrEmpty()), ShouldResemble, []string{"grid", "grid two"})
		})

		Convey("It handles braces inside strings", func() {
			page := scriptPage(`var ytInitialData = {"x":{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"a } b \" {"}}}; var other = {};`)
			So(titles(strategy.Extract(page).OrEmpty()), ShouldResemble, []string{`a } b " {`})
		})

		Convey("It drops renderers missing a title or a valid identifier", func() {
			page := scriptPage(`var ytInitialData = {"x":[
				{"videoRenderer":{"videoId":"AAAAAAAAAAA"}},
				{"videoRenderer":{"videoId":"short","title":"bad id"}},
				{"videoRenderer":{"title":"no id"}},
				{"videoRenderer":"not an object"},
				{"videoRenderer":{"videoId":"BBBBBBBBBBB","title":"kept"}}
			]};`)
			So(titles(strategy.Extract(page).OrEmpty()), ShouldResemble, []string{"kept"})
		})

		Convey("It skips a malformed block and uses the next one", func() {
			page := scriptPage(
				`var ytInitialData = {"broken": [};`,
				`var ytInitialData = {"x":{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"ok"}}};`,
			)
			So(titles(strategy.Extract(page).OrEmpty()), ShouldResemble, []string{"ok"})
		})

		Convey("It cuts the payload at the balancing brace", func() {
			payload, ok := strategy.payload(`var ytInitialData = {"x":{"y":"};"}}; var z = 1;`, strategy.assignments[0])
			So(ok, ShouldBeTrue)
			So(string(payload), ShouldEqual, `{"x":{"y":"};"}}`)
		})

		Convey("It falls back to the first '};' when braces never balance", func() {
			payload, ok := strategy.payload(`var ytInitialData = {"x": {"y": 1};`, strategy.assignments[0])
			So(ok, ShouldBeTrue)
			So(string(payload), ShouldEqual, `{"x": {"y": 1}`)

			_, ok = strategy.payload(`var ytInitialData = {"x": 1`, strategy.assignments[0])
			So(ok, ShouldBeFalse)
		})

		Convey("It ignores script blocks without the marker", func() {
			page := scriptPage(`var somethingElse = {"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"hidden"}};`)
			So(strategy.Extract(page).IsAbsent(), ShouldBeTrue)
		})

		Convey("It finds nothing in a block without renderers", func() {
			page := scriptPage(`var ytInitialData = {"contents":{"tabs":[]}};`)
			So(strategy.Extract(page).IsAbsent(), ShouldBeTrue)
		})

		Convey("It stops descending past the depth limit", func() {
			shallow := NewEmbedded(DefaultMarker, DefaultRenderers(), 1)
			page := scriptPage(`var ytInitialData = {"a":[{"videoRenderer":{"videoId":"AAAAAAAAAAA","title":"deep"}}]};`)
			So(shallow.Extract(page).IsAbsent(), ShouldBeTrue)
			So(strategy.Extract(page).IsPresent(), ShouldBeTrue)
		})
	})
}

func TestBalancedObject(t *testing.T) {
	Convey("balancedObject", t, func() {
		object, ok := balancedObject(`{"a":{"b":"}\\\"}"}}; rest`)
		So(ok, ShouldBeTrue)
		So(object, ShouldEqual, `{"a":{"b":"}\\\"}"}}`)

		_, ok = balancedObject(`{"a":{`)
		So(ok, ShouldBeFalse)
	})
}
