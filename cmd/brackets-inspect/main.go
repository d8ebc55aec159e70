package main

import (
	"os"

	"github.com/ToineBo/brackets/cmd/brackets-inspect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
