// Command lumen runs the Lumen language interpreter.
package main

import (
	"os"

	"github.com/cwbudde/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
