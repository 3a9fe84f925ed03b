// Command lineedit-demo runs an interactive form built from lineedit inputs
// and a button.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
