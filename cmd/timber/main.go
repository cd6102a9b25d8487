// Package main provides the CLI for Timber, a logical typing and schema
// validation layer for tabular data.
package main

import (
	"fmt"
	"os"

	"github.com/timberline-data/timber/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
