// Package extract finds videos in a saved channel page through a cascade of strategies:
// embedded JSON state first, then HTML elements, then a raw text scan.
package extract

// Defaults used when no configuration overrides them.
const (
	DefaultMarker    = "ytInitialData"
	DefaultTextLimit = 50
	DefaultMaxDepth  = 512
)

// DefaultRenderers returns the keys that mark a video renderer node inside embedded data.
func DefaultRenderers() []string {
	return []string{"videoRenderer", "gridVideoRenderer"}
}

// DefaultSelectors returns the CSS selectors evaluated by the markup strategy, in order.
// They describe upstream markup that is not versioned, so they are configuration rather than contract.
func DefaultSelectors() []string {
	return []string{
		`a[href*="/watch?v="]`,
		`a[href*="youtu.be/"]`,
		`[data-video-id]`,
		`.ytd-video-renderer`,
		`.ytd-grid-video-renderer`,
	}
}

// Options tune the cascade. The zero value of any field falls back to its default.
type Options struct {
	// Marker is the substring a script block must contain to be parsed.
	Marker string
	// Renderers are the object keys naming a video renderer node.
	Renderers []string
	// Selectors are evaluated in order by the markup strategy.
	Selectors []string
	// TextLimit caps the text-pattern strategy.
	TextLimit int
	// MaxDepth bounds the embedded-data walk.
	MaxDepth int
	// Progress, when set, is called with each strategy name before it runs.
	Progress func(strategy string)
}

// DefaultOptions returns Options populated with every default.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if len(o.Renderers) == 0 {
		o.Renderers = DefaultRenderers()
	}
	if len(o.Selectors) == 0 {
		o.Selectors = DefaultSelectors()
	}
	if o.TextLimit <= 0 {
		o.TextLimit = DefaultTextLimit
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Progress == nil {
		o.Progress = func(string) {}
	}
	return o
}

// Strategies builds the cascade in the order it is tried.
func (o Options) Strategies() []Strategy {
	o = o.withDefaults()
	return []Strategy{
		NewEmbedded(o.Marker, o.Renderers, o.MaxDepth),
		NewMarkup(o.Selectors),
		NewText(o.TextLimit),
	}
}
