package extract

import (
	"github.com/vidharvest/vidharvest/video"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dedup drops every video whose identifier was already seen, keeping first-seen order.
func Dedup(videos []video.Video) []video.Video {
	unique := orderedmap.New[string, video.Video]()
	for _, v := range videos {
		if _, seen := unique.Get(v.ID); !seen {
			unique.Set(v.ID, v)
		}
	}

	result := make([]video.Video, 0, unique.Len())
	for pair := unique.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}
