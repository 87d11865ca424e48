// Package main provides the CLI for the credsift query compiler.
package main

import (
	"os"

	"github.com/leapstack-labs/credsift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
