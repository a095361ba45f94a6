// Package main provides the guidelint CLI.
package main

import (
	"os"

	"github.com/stackone-labs/guidelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
