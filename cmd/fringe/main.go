// Package main is the entry point for the fringe CLI.
//
// Usage:
//
//	fringe [flags] <command> [args]
//
// Commands:
//
//	path   - Find a lowest-cost path in a YAML graph file
//	bench  - Cross-check fringe search against Dijkstra on random graphs
package main

import (
	"fmt"
	"os"

	"github.com/pdrpinto/fringe/cmd/fringe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
