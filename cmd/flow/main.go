// Package main is the entry point for the flow CLI tool.
package main

import (
	"os"

	"github.com/flowtool/flow/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
