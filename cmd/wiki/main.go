// Command wiki renders a single-page personal wiki in the terminal.
package main

import (
	"fmt"
	"os"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := newApp(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wiki:", err)
		os.Exit(1)
	}
}
