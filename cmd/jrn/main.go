// Package main is the entry point for the jrn CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/journal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
