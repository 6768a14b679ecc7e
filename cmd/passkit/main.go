// passkit generates passwords, estimates their strength and hashes or
// verifies credentials from the command line.
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errMismatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
