// Package main is the entry point for the tunegrab application.
package main

import (
	"github.com/samber/lo"
	"github.com/tunegrab-cli/tunegrab/cmd"
	"github.com/tunegrab-cli/tunegrab/config"
	"github.com/tunegrab-cli/tunegrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
