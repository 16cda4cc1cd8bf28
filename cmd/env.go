package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidharvest/vidharvest/color"
	"github.com/vidharvest/vidharvest/config"
	"github.com/vidharvest/vidharvest/style"
	"github.com/vidharvest/vidharvest/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// supportedEnv lists every environment variable read by the application, sorted.
func supportedEnv() []string {
	envs := lo.Map(config.EnvExposed, func(key string, _ int) string {
		field := config.Default[key]
		return field.Env()
	})
	envs = append(envs, where.EnvConfigPath)
	slices.Sort(envs)
	return envs
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range supportedEnv() {
			value, present := os.LookupEnv(env)

			if !present && setOnly {
				continue
			}

			if present && unsetOnly {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
