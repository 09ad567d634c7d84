// Command roastctl runs the itinerary roast pipeline once from a terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultEnvironment()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roastctl:", err)
		os.Exit(1)
	}
}
