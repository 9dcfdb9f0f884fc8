package main

import (
	"os"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/cmd/evalcase/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
