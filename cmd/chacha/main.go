package main

import (
	"os"

	"chacha/cmd/chacha/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
