// Package main provides the elib CLI, a single-user personal library
// tracker backed by local storage.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Kaylain7/E-library/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var ue userErr
		if errors.As(err, &ue) || errors.Is(err, types.ErrNotFound) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
