// Package pipeline runs one extraction: read a saved page, run the cascade, report on
// the console and write the outputs.
package pipeline

import (
	"io"

	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/config"
	"github.com/vidharvest/vidharvest/extract"
	"github.com/vidharvest/vidharvest/key"
	"github.com/vidharvest/vidharvest/sink"
)

// Options configure a single run. Each run owns its input, outputs and writer.
type Options struct {
	// Out receives the human-readable report; nil discards it.
	Out io.Writer
	// Input is the path of the saved channel page.
	Input string
	// Sinks receive the final result, in order. They are skipped when nothing is found.
	Sinks []sink.Sink
	// Preview is how many videos are listed on the console.
	Preview int
	// Extract tunes the strategy cascade.
	Extract extract.Options
}

// OptionsFromConfig builds Options from the active configuration.
func OptionsFromConfig(out io.Writer) *Options {
	return &Options{
		Out:   out,
		Input: viper.GetString(key.InputPath),
		Sinks: []sink.Sink{
			sink.NewCSV(viper.GetString(key.OutputCSV)),
			sink.NewJSON(viper.GetString(key.OutputJSON)),
		},
		Preview: viper.GetInt(key.OutputPreview),
		Extract: extract.Options{
			Marker:    viper.GetString(key.ExtractMarker),
			Renderers: config.StringSlice(key.ExtractRenderers),
			Selectors: config.StringSlice(key.ExtractSelectors),
			TextLimit: viper.GetInt(key.ExtractTextLimit),
			MaxDepth:  viper.GetInt(key.ExtractMaxDepth),
		},
	}
}
