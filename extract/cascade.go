package extract

import (
	logrus "github.com/sirupsen/logrus"
	"github.com/vidharvest/vidharvest/log"
	"github.com/vidharvest/vidharvest/video"
)

// Result is the outcome of one cascade run. An empty Strategy means no strategy found anything.
type Result struct {
	Strategy string
	Videos   []video.Video
}

// Empty reports whether no video was found.
func (r Result) Empty() bool {
	return len(r.Videos) == 0
}

// Run tries each strategy in order on raw and deduplicates the output of the first
// one that finds anything. Strategies are never merged.
func Run(raw string, opts Options) Result {
	opts = opts.withDefaults()
	return Cascade(NewPage(raw), opts.Progress, opts.Strategies()...)
}

// Cascade runs strategies against page in order; see Run.
func Cascade(page *Page, progress func(string), strategies ...Strategy) Result {
	if progress == nil {
		progress = func(string) {}
	}

	for _, s := range strategies {
		progress(s.Name())

		videos, ok := s.Extract(page).Get()
		if !ok {
			log.Debugf("%s: nothing found", s.Name())
			continue
		}

		unique := Dedup(videos)
		log.WithFields(logrus.Fields{
			"strategy": s.Name(),
			"found":    len(videos),
			"unique":   len(unique),
		}).Info("strategy succeeded")
		return Result{Strategy: s.Name(), Videos: unique}
	}

	return Result{}
}
