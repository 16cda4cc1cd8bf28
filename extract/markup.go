package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidharvest/vidharvest/log"
	"github.com/vidharvest/vidharvest/util"
	"github.com/vidharvest/vidharvest/video"
)

// Markup selects video links and cards from the parsed page and reads their attributes.
type Markup struct {
	selectors []string
}

// NewMarkup builds the strategy for selectors, evaluated in the given order.
func NewMarkup(selectors []string) *Markup {
	return &Markup{selectors: selectors}
}

func (m *Markup) Name() string { return NameMarkup }

// Extract returns one video per matched element that has both an identifier and a
// title. Elements matched by several selectors are returned once per selector.
func (m *Markup) Extract(page *Page) mo.Option[[]video.Video] {
	var videos []video.Video

	for _, selector := range m.selectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			log.Debugf("skip selector %q: %v", selector, err)
			continue
		}

		page.Doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
			if v, ok := fromElement(s); ok {
				videos = append(videos, v)
			}
		})
	}

	return found(videos)
}

// fromElement prefers a valid data-video-id attribute and falls back to the href.
// The title comes from the title attribute, then aria-label.
func fromElement(s *goquery.Selection) (video.Video, bool) {
	id := s.AttrOr("data-video-id", "")
	if !video.ValidID(id) {
		id = util.ReGroups(hrefID, s.AttrOr("href", ""))["id"]
	}

	title := lo.CoalesceOrEmpty(s.AttrOr("title", ""), s.AttrOr("aria-label", ""))

	if id == "" || title == "" {
		return video.Video{}, false
	}
	return video.New(id, title), true
}
