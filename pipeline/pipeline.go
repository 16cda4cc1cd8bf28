package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"unicode/utf8"

	"github.com/vidharvest/vidharvest/extract"
	"github.com/vidharvest/vidharvest/filesystem"
	"github.com/vidharvest/vidharvest/log"
)

// ErrInvalidEncoding is the cause reported when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// Run performs one extraction. Problems with the input are reported through the
// returned Report; only output write failures are returned as an error.
func Run(options *Options) (*Report, error) {
	out := options.Out
	if out == nil {
		out = io.Discard
	}
	console := newConsole(out, options.Preview)
	console.banner()

	raw, err := read(options.Input)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warnf("input %s not found", options.Input)
		console.missing(options.Input)
		return &Report{Outcome: OutcomeSourceMissing, Err: err}, nil
	case err != nil:
		log.Errorf("read input %s: %v", options.Input, err)
		console.unreadable(options.Input, err)
		return &Report{Outcome: OutcomeSourceUnreadable, Err: err}, nil
	}

	extractOptions := options.Extract
	extractOptions.Progress = console.trying
	result := extract.Run(raw, extractOptions)

	if result.Empty() {
		console.empty()
		return &Report{Outcome: OutcomeEmpty}, nil
	}

	console.found(result.Videos)

	report := &Report{
		Outcome:  OutcomeFound,
		Strategy: result.Strategy,
		Videos:   result.Videos,
	}

	for _, s := range options.Sinks {
		if err := s.Write(result.Videos); err != nil {
			return report, err
		}
		report.Written = append(report.Written, s.Path())
		console.saved(s.Path())
	}

	console.done(report.Written)
	return report, nil
}

func read(path string) (string, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
