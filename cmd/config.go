package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/color"
	"github.com/vidharvest/vidharvest/config"
	"github.com/vidharvest/vidharvest/constant"
	"github.com/vidharvest/vidharvest/filesystem"
	"github.com/vidharvest/vidharvest/icon"
	"github.com/vidharvest/vidharvest/style"
	"github.com/vidharvest/vidharvest/where"
	"golang.org/x/exp/slices"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func knownKey(key string) error {
	if _, ok := config.Default[key]; !ok {
		return errUnknownKey(key)
	}
	return nil
}

func sortedKeys() []string {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return sortedKeys(), cobra.ShellCompDirectiveNoFileComp
}

// keyArg returns the key given as the first argument or through --key.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if flagKey, _ := cmd.Flags().GetString("key"); flagKey != "" {
		return flagKey, nil
	}
	return "", errors.New("key is required as an argument or --key flag")
}

// formatValue renders a config value for the console. Lists are joined with commas,
// the same form accepted from environment variables.
func formatValue(value any) string {
	if list, ok := value.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(value)
}

// writeConfig saves the in-memory configuration, creating the file on first use.
func writeConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(where.ConfigFile())
	}

	return err
}

// setConfig parses and validates raw for key, then persists it. Nothing is written
// when the value is rejected.
func setConfig(key string, raw []string) (any, error) {
	if err := knownKey(key); err != nil {
		return nil, err
	}

	value, err := config.Parse(key, raw)
	if err != nil {
		return nil, err
	}

	viper.Set(key, value)
	return value, writeConfig()
}

// resetConfig restores key, or every key when all is set, to its default and persists the result.
func resetConfig(key string, all bool) error {
	if all {
		for name, field := range config.Default {
			viper.Set(name, field.Value)
		}
		return writeConfig()
	}

	if err := knownKey(key); err != nil {
		return err
	}
	viper.Set(key, config.Default[key].Value)
	return writeConfig()
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the commands that inspect and edit vidharvest.toml.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the extraction settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe; all keys when omitted")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd describes config keys: default, current value and environment variable.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe config keys with their defaults and environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if len(keys) == 0 {
			keys = sortedKeys()
		}

		fields := make([]*config.Field, 0, len(keys))
		for _, key := range keys {
			handleErr(knownKey(key))
			field := config.Default[key]
			fields = append(fields, &field)
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configGetCmd.SetOut(os.Stdout)
}

// configGetCmd prints the effective value of a key, after file and environment overrides.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a config key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)
		handleErr(knownKey(key))

		cmd.Println(formatValue(config.Current(key)))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to update")
	configSetCmd.Flags().StringArrayP("value", "v", []string{}, "The new value; repeat for list keys")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configSetCmd.SetOut(os.Stdout)
}

// configSetCmd validates and stores a value. List keys such as extract.selectors take
// one argument per entry.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Validate and store a config value",
	Example:           "  " + constant.App + ` config set extract.selectors "a[href*='/watch?v=']" ".ytd-grid-video-renderer a"`,
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyArg(cmd, args)
		handleErr(err)

		values := lo.Must(cmd.Flags().GetStringArray("value"))
		if len(args) > 1 {
			values = args[1:]
		}

		value, err := setConfig(key, values)
		handleErr(err)

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(formatValue(value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to restore to its default value")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key to its default value")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configResetCmd.SetOut(os.Stdout)
}

// configResetCmd restores defaults for one key or for all of them.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a config key, or all of them, to the default",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			key = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		handleErr(resetConfig(key, all))

		if all {
			cmd.Printf("%s reset all config values\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		cmd.Printf(
			"%s reset %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(formatValue(config.Default[key].Value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
	configCheckCmd.SetOut(os.Stdout)
}

// configCheckCmd validates the effective configuration, including values edited by hand
// in vidharvest.toml or supplied through the environment.
var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Check())
		cmd.Printf("%s configuration is valid\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	configWriteCmd.SetOut(os.Stdout)
}

// configWriteCmd writes the current configuration to vidharvest.toml.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := where.ConfigFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfigAs(path))
		cmd.Printf("%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
	configDeleteCmd.SetOut(os.Stdout)
}

// configDeleteCmd removes vidharvest.toml, leaving defaults and environment in effect.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(where.ConfigFile()))
		cmd.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
