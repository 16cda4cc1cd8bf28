package util

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(0, "video", "videos"), ShouldEqual, "0 videos")
		So(Quantify(2, "video", "videos"), ShouldEqual, "2 videos")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`v=(?P<id>[a-zA-Z0-9_-]{11})`)

		Convey("Should map named groups", func() {
			So(ReGroups(re, "/watch?v=dQw4w9WgXcQ&t=1")["id"], ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should be empty without a match", func() {
			So(ReGroups(re, "/channel/abc"), ShouldBeEmpty)
		})
	})
}

func TestMin(t *testing.T) {
	Convey("Min", t, func() {
		So(Min(5, 1, 2), ShouldEqual, 1)
		So(Min[int](), ShouldEqual, 0)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
		So(s.Len(), ShouldEqual, 0)
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth is zero for anything but a terminal", t, func() {
		So(TerminalWidth(&bytes.Buffer{}), ShouldEqual, 0)

		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		So(err, ShouldBeNil)
		defer f.Close()
		So(TerminalWidth(f), ShouldEqual, 0)
	})
}
