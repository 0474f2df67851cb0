// Package main is the entry point for the tech-verdict CLI.
package main

import (
	"os"

	"tech-verdict/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
