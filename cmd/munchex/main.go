package main

import (
	"os"

	"github.com/Munch42/MunchEx/cmd/munchex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
