// Package main provides the dtab CLI: load, inspect, transform, and convert
// table files between the supported formats.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fieldline/datatable/pkg/table"
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
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to an exit code: format and table shape problems
// are user errors, everything else (I/O, parse failures) is a system error.
func exitCodeFor(err error) int {
	if errors.Is(err, table.ErrUnsupportedFormat) || errors.Is(err, table.ErrMalformedTable) {
		return exitUserError
	}
	return exitSysError
}
