// Package main is the entry point for the nsvalidate CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/nsvalidate/cmd/nsvalidate/commands"
	"github.com/thoreinstein/nsvalidate/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	switch {
	case errors.As(err, &exitErr):
		if !exitErr.Silent() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(errors.ExitCode(err))
}
