// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidharvest/vidharvest/constant"
	"github.com/vidharvest/vidharvest/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "VIDHARVEST_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding vidharvest.toml.
// VIDHARVEST_CONFIG_PATH wins over the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile resolves the path of the TOML configuration file. The file itself may not exist.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs resolves the directory for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
