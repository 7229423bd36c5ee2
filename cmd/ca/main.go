package main

import (
	"fmt"
	"os"

	"text-ca/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ca: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
