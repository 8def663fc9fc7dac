// Command server runs the gonlp CLI.
package main

import (
	"os"

	"GoNLP/internal/cli"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
