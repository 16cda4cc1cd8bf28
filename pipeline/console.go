package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/vidharvest/vidharvest/color"
	"github.com/vidharvest/vidharvest/constant"
	"github.com/vidharvest/vidharvest/extract"
	"github.com/vidharvest/vidharvest/icon"
	"github.com/vidharvest/vidharvest/style"
	"github.com/vidharvest/vidharvest/util"
	"github.com/vidharvest/vidharvest/video"
)

const rule = 50

var strategyLabels = map[string]string{
	extract.NameEmbedded: "Searching for embedded page data...",
	extract.NameMarkup:   "Attempting direct HTML parsing...",
	extract.NameText:     "Searching for video IDs in the raw text...",
}

// console prints the progress and summary lines of a run. It is informational only.
type console struct {
	out     io.Writer
	preview int
	width   int
	step    int
}

func newConsole(out io.Writer, preview int) *console {
	return &console{out: out, preview: preview, width: util.TerminalWidth(out)}
}

func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *console) banner() {
	c.printf("%s\n%s\n", style.Heading(constant.App+" "+constant.Version), strings.Repeat("=", rule))
}

func (c *console) trying(strategy string) {
	c.step++
	label, ok := strategyLabels[strategy]
	if !ok {
		label = strategy + "..."
	}
	c.printf("%s Method %d: %s\n", icon.Get(icon.Progress), c.step, label)
}

func (c *console) missing(path string) {
	c.printf("%s File %s not found!\n", style.Fg(color.Red)(icon.Get(icon.Fail)), path)
}

func (c *console) unreadable(path string, err error) {
	c.printf("%s Error processing file %s: %v\n", style.Fg(color.Red)(icon.Get(icon.Fail)), path, err)
}

func (c *console) empty() {
	c.printf("%s No videos found. The HTML structure might be different.\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)))
}

func (c *console) found(videos []video.Video) {
	c.printf("%s Successfully extracted %s!\n\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(len(videos), "video", "videos"))
	c.printf("Found %s:\n%s\n", util.Quantify(len(videos), "unique video", "unique videos"), strings.Repeat("-", rule))

	shown := util.Min(max(c.preview, 0), len(videos))
	for i, v := range videos[:shown] {
		c.printf("%d. %s\n   %s %s\n\n", i+1, c.fit(v.Title), style.Faint("URL:"), style.Fg(color.Gray)(v.URL()))
	}

	if rest := len(videos) - shown; rest > 0 {
		c.printf("... and %s\n", util.Quantify(rest, "more video", "more videos"))
	}
}

func (c *console) saved(path string) {
	c.printf("%s Videos saved to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
}

func (c *console) done(paths []string) {
	c.printf("\n%s Extraction complete! Check %s\n", icon.Get(icon.Video), strings.Join(paths, " and "))
}

// fit truncates a preview title to the terminal width, leaving room for the list prefix.
func (c *console) fit(title string) string {
	if c.width <= 8 {
		return title
	}
	return truncate.StringWithTail(title, uint(c.width-5), "…")
}
