// Package cmd implements the command-line interface for vidharvest.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/color"
	"github.com/vidharvest/vidharvest/constant"
	"github.com/vidharvest/vidharvest/icon"
	"github.com/vidharvest/vidharvest/key"
	"github.com/vidharvest/vidharvest/log"
	"github.com/vidharvest/vidharvest/pipeline"
	"github.com/vidharvest/vidharvest/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().String("csv", "", "Path of the CSV output")
	lo.Must0(viper.BindPFlag(key.OutputCSV, rootCmd.Flags().Lookup("csv")))

	rootCmd.Flags().String("json", "", "Path of the JSON output")
	lo.Must0(viper.BindPFlag(key.OutputJSON, rootCmd.Flags().Lookup("json")))

	rootCmd.Flags().IntP("preview", "p", 0, "Number of videos listed on the console")
	lo.Must0(viper.BindPFlag(key.OutputPreview, rootCmd.Flags().Lookup("preview")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., plain, emoji, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd extracts the videos of a saved channel page.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [file]",
	Short: "Extract the video list of a saved YouTube channel page",
	Long: style.Heading(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Extract titles and links from a saved YouTube channel page into CSV and JSON"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 1 {
			viper.Set(key.InputPath, args[0])
		}

		report, err := pipeline.Run(pipeline.OptionsFromConfig(cmd.OutOrStdout()))
		handleErr(err)

		log.Infof("run finished: %s, %d videos", report.Outcome, len(report.Videos))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
