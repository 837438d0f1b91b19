// Package main provides the entry point for the bumpmig CLI tool.
package main

import (
	"os"

	"github.com/rkallio/bumpmig/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
