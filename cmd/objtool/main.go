// objtool is a CLI utility for parsing and inspecting Wavefront OBJ files.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/wavefront/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
