// ABOUTME: Command line interface for the sports news pipeline
// ABOUTME: Runs aggregations, health probes and the API server from a terminal

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
