package main

import (
	"os"

	"github.com/spendlog-dev/spendlog/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
