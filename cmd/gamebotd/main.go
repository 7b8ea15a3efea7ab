// Package main is the entry point for the gamebotd host process.
package main

import (
	"os"

	"github.com/gamebot-io/gamebot/internal/host/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
