package config

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// StringSlice reads a list key. A value taken from the environment is split on commas,
// so entries may contain spaces, as descendant selectors do.
func StringSlice(name string) []string {
	if field, ok := Default[name]; ok {
		if raw := os.Getenv(field.Env()); raw != "" {
			return SplitList(raw)
		}
	}
	return viper.GetStringSlice(name)
}

// SplitList splits a comma separated list, trimming blanks and dropping empty entries.
func SplitList(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
