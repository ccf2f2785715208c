package main

import (
	"os"

	"recordio/cmd/recordio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
