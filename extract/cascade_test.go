package extract

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidharvest/vidharvest/video"
)

func TestRun(t *testing.T) {
	Convey("Given the full cascade", t, func() {
		var tried []string
		opts := Options{Progress: func(name string) { tried = append(tried, name) }}

		Convey("Embedded data wins and the result has one record", func() {
			raw := `<html><head><script>var ytInitialData = {"...":[{"videoRenderer":{"videoId":"dQw4w9WgXcQ","title":{"simpleText":"Example"}}}]};</script></head>
<body><a href="/watch?v=AAAAAAAAAAA" title="ignored"></a></body></html>`
			result := Run(raw, opts)

			So(result.Strategy, ShouldEqual, NameEmbedded)
			So(result.Videos, ShouldHaveLength, 1)
			So(result.Videos[0].Record(), ShouldResemble, video.Record{
				Title:   "Example",
				URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				VideoID: "dQw4w9WgXcQ",
			})
			So(tried, ShouldResemble, []string{NameEmbedded})
		})

		Convey("A page without a marker falls through to the markup strategy", func() {
			result := Run(cardsPage, opts)

			So(result.Strategy, ShouldEqual, NameMarkup)
			So(tried, ShouldResemble, []string{NameEmbedded, NameMarkup})
			So(titles(result.Videos), ShouldResemble, []string{"First", "Second", "Third", "Fifth"})
		})

		Convey("A marker block without renderers also falls through", func() {
			raw := `<script>var ytInitialData = {"contents":{}};</script>` + cardsPage
			So(Run(raw, opts).Strategy, ShouldEqual, NameMarkup)
		})

		Convey("The text scan runs last and duplicates collapse", func() {
			raw := `<p>watch?v=AAAAAAAAAAA youtu.be/BBBBBBBBBBB watch?v=AAAAAAAAAAA /embed/CCCCCCCCCCC</p>`
			result := Run(raw, opts)

			So(result.Strategy, ShouldEqual, NameText)
			So(tried, ShouldResemble, []string{NameEmbedded, NameMarkup, NameText})
			So(ids(result.Videos), ShouldResemble, []string{"AAAAAAAAAAA", "BBBBBBBBBBB", "CCCCCCCCCCC"})
		})

		Convey("No strategy finding anything is an empty result", func() {
			result := Run(`<html><body><p>nothing to see</p></body></html>`, opts)

			So(result.Empty(), ShouldBeTrue)
			So(result.Strategy, ShouldBeEmpty)
			So(tried, ShouldHaveLength, 3)
		})

		Convey("Identifiers are unique in every result", func() {
			for _, raw := range []string{cardsPage, `<p>watch?v=AAAAAAAAAAA watch?v=AAAAAAAAAAA</p>`} {
				result := Run(raw, Options{})
				So(lo.Uniq(ids(result.Videos)), ShouldHaveLength, len(result.Videos))
			}
		})
	})
}

type stubStrategy struct {
	name   string
	videos []video.Video
	calls  *int
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Extract(*Page) mo.Option[[]video.Video] {
	*s.calls++
	return found(s.videos)
}

func TestCascade(t *testing.T) {
	Convey("Cascade stops at the first strategy that finds something", t, func() {
		var first, second, third int
		result := Cascade(NewPage(""), nil,
			stubStrategy{name: "first", calls: &first},
			stubStrategy{name: "second", calls: &second, videos: []video.Video{video.New("AAAAAAAAAAA", "a")}},
			stubStrategy{name: "third", calls: &third, videos: []video.Video{video.New("BBBBBBBBBBB", "b")}},
		)

		So(result.Strategy, ShouldEqual, "second")
		So([]int{first, second, third}, ShouldResemble, []int{1, 1, 0})
	})
}
