// Command typediter classifies constructor shapes and casts raw YAML elements
// through them with a typed iterable.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
