// Package main is the entry point for vidharvest.
package main

import (
	"github.com/samber/lo"
	"github.com/vidharvest/vidharvest/cmd"
	"github.com/vidharvest/vidharvest/config"
	"github.com/vidharvest/vidharvest/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
