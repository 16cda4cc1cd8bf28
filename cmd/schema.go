package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidharvest/vidharvest/video"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// outputSchema describes the JSON output: an array of video records.
func outputSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{ExpandedStruct: true}
	item := reflector.Reflect(&video.Record{})
	item.Version = ""

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "vidharvest output",
		Description: "Videos extracted from a saved channel page, in page order",
		Type:        "array",
		Items:       item,
	}
}

// schemaCmd prints the JSON Schema of the JSON output file.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(outputSchema()))
	},
}
