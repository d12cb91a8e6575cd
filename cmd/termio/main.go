package main

import (
	"os"

	"github.com/msto63/termio/cmd/termio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
