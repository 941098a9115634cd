// Command synapsectl inspects and edits Synapse settings and API keys from a
// terminal, using the same store and keyring as the desktop app.
package main

import (
	"errors"
	"fmt"
	"os"

	"synapse/internal/services"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cerr *services.CommandError
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case services.CommandInvalidInput:
			return 2
		case services.CommandNotFound:
			return 3
		}
	}
	return 1
}
