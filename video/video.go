// Package video defines the record extracted from a channel page.
package video

import (
	"encoding/json"
	"regexp"

	"github.com/vidharvest/vidharvest/constant"
)

// IDLength is the fixed length of a video identifier.
const IDLength = 11

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ValidID reports whether id is exactly eleven characters of [A-Za-z0-9_-].
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Video is one extracted video. The URL is always derived from ID.
type Video struct {
	Title string
	ID    string
}

// New builds a Video from an identifier and a title.
func New(id, title string) Video {
	return Video{ID: id, Title: title}
}

// Placeholder builds a Video whose title is synthesized from its identifier,
// for sources that carry no title at all.
func Placeholder(id string) Video {
	return Video{ID: id, Title: "Video ID: " + id}
}

// URL returns the canonical watch URL.
func (v Video) URL() string {
	return constant.WatchURLPrefix + v.ID
}

// String returns the title for display.
func (v Video) String() string {
	return v.Title
}

// Record is the serialized shape shared by the CSV and JSON outputs.
type Record struct {
	Title   string `json:"title" jsonschema:"minLength=1"`
	URL     string `json:"url" jsonschema:"format=uri"`
	VideoID string `json:"video_id" jsonschema:"pattern=^[a-zA-Z0-9_-]{11}$"`
}

// Columns is the CSV header, in field order.
var Columns = []string{"title", "url", "video_id"}

// Row returns the record as CSV fields ordered like Columns.
func (r Record) Row() []string {
	return []string{r.Title, r.URL, r.VideoID}
}

// Record converts v to its serialized shape.
func (v Video) Record() Record {
	return Record{Title: v.Title, URL: v.URL(), VideoID: v.ID}
}

// MarshalJSON emits the Record shape so that the URL is never stored separately.
func (v Video) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Record())
}

// UnmarshalJSON reads the Record shape back; the url field is ignored and recomputed.
func (v *Video) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v.ID = r.VideoID
	v.Title = r.Title
	return nil
}
