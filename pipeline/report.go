package pipeline

import "github.com/vidharvest/vidharvest/video"

// Outcome classifies how a run ended.
type Outcome int

const (
	// OutcomeFound means at least one video was extracted and written.
	OutcomeFound Outcome = iota
	// OutcomeEmpty means every strategy came back empty. This is not an error.
	OutcomeEmpty
	// OutcomeSourceMissing means the input file does not exist.
	OutcomeSourceMissing
	// OutcomeSourceUnreadable means the input exists but could not be read as UTF-8 text.
	OutcomeSourceUnreadable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeSourceMissing:
		return "source missing"
	case OutcomeSourceUnreadable:
		return "source unreadable"
	default:
		return "unknown"
	}
}

// Report describes a finished run.
type Report struct {
	Outcome Outcome
	// Strategy names the strategy that produced Videos, if any.
	Strategy string
	Videos   []video.Video
	// Written lists the output paths, in sink order.
	Written []string
	// Err holds the cause of OutcomeSourceUnreadable.
	Err error
}
