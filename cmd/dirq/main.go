// Package main is the entry point for the dirq CLI binary.
package main

import (
	"os"

	"github.com/tinywasm/dirorm/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
