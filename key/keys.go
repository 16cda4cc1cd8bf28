// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Input - where the saved channel page is read from.
const (
	InputPath = "input.path"
)

// Output - destinations and console preview of the extracted records.
const (
	OutputCSV     = "output.csv"
	OutputJSON    = "output.json"
	OutputPreview = "output.preview"
)

// Extraction - tuning of the strategy cascade.
const (
	ExtractMarker    = "extract.marker"
	ExtractRenderers = "extract.renderers"
	ExtractSelectors = "extract.selectors"
	ExtractTextLimit = "extract.text_limit"
	ExtractMaxDepth  = "extract.max_depth"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
