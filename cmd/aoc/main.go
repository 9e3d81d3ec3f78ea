// Package main provides the aoc CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/aoc2023/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
