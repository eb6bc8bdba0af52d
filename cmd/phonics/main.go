// Package main is the entry point for the phonics CLI.
package main

import (
	"os"

	"github.com/f3rmion/phonics/cmd/phonics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
