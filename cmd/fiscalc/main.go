package main

import (
	"os"

	"github.com/habitar/fiscal-engine/cmd/fiscalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
