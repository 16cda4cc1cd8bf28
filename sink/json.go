package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/vidharvest/vidharvest/filesystem"
	"github.com/vidharvest/vidharvest/video"
)

// JSON writes an indented array of {title, url, video_id} objects. Non-ASCII and
// HTML characters are written as-is, and the file has no trailing newline.
type JSON struct {
	path string
}

// NewJSON returns a JSON sink writing to path.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

func (j *JSON) Path() string { return j.path }

// Write stores videos; an empty sequence is written as [].
func (j *JSON) Write(videos []video.Video) error {
	records := lo.Map(videos, func(v video.Video, _ int) video.Record {
		return v.Record()
	})

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data := literalSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))

	err := filesystem.WriteAtomic(j.path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("write json %s: %w", j.path, err)
	}
	return nil
}

var (
	escapedLineSeparator      = []byte(`\u2028`)
	escapedParagraphSeparator = []byte(`\u2029`)
)

// literalSeparators undoes the \u2028 and \u2029 escapes that encoding/json applies
// even with HTML escaping off. Other escape sequences are copied as whole pairs so an
// escaped backslash followed by "u2028" is left alone.
func literalSeparators(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 == len(data) {
			out = append(out, data[i])
			continue
		}

		switch rest := data[i:]; {
		case bytes.HasPrefix(rest, escapedLineSeparator):
			out = append(out, "\u2028"...)
			i += len(escapedLineSeparator) - 1
		case bytes.HasPrefix(rest, escapedParagraphSeparator):
			out = append(out, "\u2029"...)
			i += len(escapedParagraphSeparator) - 1
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}

	return out
}
