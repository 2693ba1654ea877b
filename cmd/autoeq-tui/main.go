package main

import (
	"fmt"
	"os"

	"github.com/handiism/autoeq-catalog/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: autoeq-tui <catalog.json>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Generate a catalog first: autoeq-gen /tmp/autoeq/results > catalog.json")
		os.Exit(1)
	}

	if err := tui.Run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
