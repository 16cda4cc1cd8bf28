package extract

import (
	"github.com/samber/mo"
	"github.com/vidharvest/vidharvest/video"
)

// Text scans the raw page for identifiers following a watch, short-link or embed
// marker. It cannot tell a watch link from a thumbnail or tracking URL, so it is
// only used when nothing better matched.
type Text struct {
	limit int
}

// NewText builds the strategy keeping at most limit distinct identifiers.
func NewText(limit int) *Text {
	return &Text{limit: limit}
}

func (t *Text) Name() string { return NameText }

// Extract returns the first limit distinct identifiers in order of appearance, each
// with a placeholder title.
func (t *Text) Extract(page *Page) mo.Option[[]video.Video] {
	var (
		videos []video.Video
		seen   = make(map[string]struct{})
	)

	for _, match := range textID.FindAllStringSubmatch(page.Raw, -1) {
		id := match[1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		videos = append(videos, video.Placeholder(id))
		if len(videos) == t.limit {
			break
		}
	}

	return found(videos)
}
