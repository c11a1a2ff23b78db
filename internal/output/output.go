// Package output provides formatting helpers for CLI output.
package output

import (
	"fmt"
	"os"
)

// ActionCompleted prints the standard success line for a finished action.
func ActionCompleted(action, outputPath string) {
	fmt.Printf("Action '%s' completed successfully. Output saved to %s\n", action, outputPath)
}

// WriteError writes an error message to stderr.
func WriteError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
