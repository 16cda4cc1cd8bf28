package sink

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/vidharvest/vidharvest/filesystem"
	"github.com/vidharvest/vidharvest/video"
)

// BOM is written first so spreadsheet applications detect UTF-8.
const BOM = "\ufeff"

// CSV writes a UTF-8 file with a byte order mark, a title,url,video_id header and CRLF line endings.
type CSV struct {
	path string
}

// NewCSV returns a CSV sink writing to path.
func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

func (c *CSV) Path() string { return c.path }

// Write does nothing for an empty sequence; no file is created.
func (c *CSV) Write(videos []video.Video) error {
	if len(videos) == 0 {
		return nil
	}

	err := filesystem.WriteAtomic(c.path, func(w io.Writer) error {
		if _, err := io.WriteString(w, BOM); err != nil {
			return err
		}

		cw := csv.NewWriter(w)
		cw.UseCRLF = true

		rows := lo.Map(videos, func(v video.Video, _ int) []string {
			return v.Record().Row()
		})
		return cw.WriteAll(append([][]string{video.Columns}, rows...))
	})
	if err != nil {
		return fmt.Errorf("write csv %s: %w", c.path, err)
	}
	return nil
}
