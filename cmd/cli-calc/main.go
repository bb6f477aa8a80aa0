package main

import (
	"os"

	"github.com/treykane/cli-calc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
