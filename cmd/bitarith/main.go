package main

import (
	"os"

	"github.com/libreseed/bitarith/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
