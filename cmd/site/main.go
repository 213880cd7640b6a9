// Package main is the entry point for the site binary.
package main

import (
	"os"

	"github.com/goamaan/site/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
