package main

import (
	"os"

	"github.com/chronos-tachyon/huffzip/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
