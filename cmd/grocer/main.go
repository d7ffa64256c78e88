// Package main provides the grocer command line tool: it parses recipe
// files and consolidates their ingredients into a shopping list.
package main

import (
	"fmt"
	"os"
)

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start grocer: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCommand(app).Execute(); err != nil {
		app.Logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
