package main

import (
	"os"

	"schoolbook/cmd/schoolbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
