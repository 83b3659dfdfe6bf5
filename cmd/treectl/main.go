// Package main provides the entry point for the treectl CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-trees/cmd/treectl/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
