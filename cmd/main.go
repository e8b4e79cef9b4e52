package main

import (
	"os"

	"github.com/ledgerd/ledgerd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
