package main

import (
	"os"

	"github.com/renlliang3/astrobase/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
