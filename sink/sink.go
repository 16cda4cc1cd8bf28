// Package sink writes extracted videos to output files.
package sink

import "github.com/vidharvest/vidharvest/video"

// Sink accepts the final, ordered sequence of videos.
type Sink interface {
	// Path is the file the sink writes to.
	Path() string
	// Write stores videos. A failed write leaves any previous file at Path untouched.
	Write(videos []video.Video) error
}
