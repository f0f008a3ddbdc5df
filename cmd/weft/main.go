// Command weft is the developer tool for the weft rendering engine:
// it renders markup files into an in-memory host tree for inspection
// and scaffolds starter programs.
package main

import (
	"os"

	"github.com/go-weft/weft/cmd/weft/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
