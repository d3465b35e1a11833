// Package main is the entry point for the flow-scripts runner.
package main

import (
	"os"

	"github.com/flowtool/flow/internal/scriptscli"
)

func main() {
	os.Exit(scriptscli.Main(os.Args[1:]))
}
