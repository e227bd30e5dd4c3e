// Package main is the chartview demo harness entry point.
package main

import (
	"fmt"
	"os"

	"github.com/go-chartview/chartview/cmd/chartview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
