// Package main provides the entry point for the fundlens CLI.
package main

import (
	"os"

	"github.com/quantrail/fundlens/cmd/fundlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
