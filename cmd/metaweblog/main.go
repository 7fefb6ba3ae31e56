package main

import (
	"os"

	"metaweblog/cmd/metaweblog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
