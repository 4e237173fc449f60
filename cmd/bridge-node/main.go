package main

import (
	"os"

	"chaincraft/cmd/bridge-node/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
