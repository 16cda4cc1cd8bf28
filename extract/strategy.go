package extract

import (
	"github.com/samber/mo"
	"github.com/vidharvest/vidharvest/video"
)

// Strategy names, as reported by Result.Strategy and the progress callback.
const (
	NameEmbedded = "embedded-data"
	NameMarkup   = "markup"
	NameText     = "text-pattern"
)

// Strategy is one extraction algorithm of the cascade. Extract returns None when it
// found nothing, which moves the cascade on to the next strategy.
type Strategy interface {
	Name() string
	Extract(page *Page) mo.Option[[]video.Video]
}

func found(videos []video.Video) mo.Option[[]video.Video] {
	if len(videos) == 0 {
		return mo.None[[]video.Video]()
	}
	return mo.Some(videos)
}
