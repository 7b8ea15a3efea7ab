// Package main is the entry point for the gamebot dashboard.
package main

import (
	"os"

	"github.com/gamebot-io/gamebot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
