// ABOUTME: Entry point for gains CLI.
// ABOUTME: Invokes the root Cobra command.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Validation messages have already been rendered.
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
