package main

import (
	"os"

	"github.com/rpatodia/tickettriage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
