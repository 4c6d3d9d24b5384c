// ABOUTME: Entry point for lift CLI.
// ABOUTME: Invokes the root Cobra command and prints failures in red.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/validate"
)

func main() {
	if err := Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr. Validation failures list every field.
func printError(err error) {
	red := color.New(color.FgRed)
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		red.Fprintf(os.Stderr, "✗ invalid %s\n", ve.Entity)
		for _, f := range ve.Fields {
			red.Fprintf(os.Stderr, "  - %s\n", f)
		}
		return
	}
	red.Fprintf(os.Stderr, "✗ %v\n", err)
}
