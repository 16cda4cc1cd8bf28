package video

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideo(t *testing.T) {
	Convey("Video", t, func() {
		v := New("dQw4w9WgXcQ", "Example")

		Convey("URL is derived from the identifier", func() {
			So(v.URL(), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		})

		Convey("Placeholder synthesizes the title", func() {
			p := Placeholder("abcdefghijk")
			So(p.Title, ShouldEqual, "Video ID: abcdefghijk")
			So(p.URL(), ShouldEqual, "https://www.youtube.com/watch?v=abcdefghijk")
		})

		Convey("JSON uses title, url and video_id keys in order", func() {
			data, err := json.Marshal(v)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"title":"Example","url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","video_id":"dQw4w9WgXcQ"}`)

			var back Video
			So(json.Unmarshal(data, &back), ShouldBeNil)
			So(back, ShouldResemble, v)
		})

		Convey("Row follows Columns", func() {
			So(Columns, ShouldResemble, []string{"title", "url", "video_id"})
			So(v.Record().Row(), ShouldResemble, []string{"Example", v.URL(), "dQw4w9WgXcQ"})
		})
	})
}

func TestValidID(t *testing.T) {
	Convey("ValidID", t, func() {
		So(ValidID("dQw4w9WgXcQ"), ShouldBeTrue)
		So(ValidID("a-b_c123XYZ"), ShouldBeTrue)
		So(ValidID("short"), ShouldBeFalse)
		So(ValidID("dQw4w9WgXcQx"), ShouldBeFalse)
		So(ValidID("dQw4w9WgX!Q"), ShouldBeFalse)
		So(ValidID(""), ShouldBeFalse)
	})
}
