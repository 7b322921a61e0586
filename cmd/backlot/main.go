// Command backlot plays Backlot Mogul runs from the terminal.
package main

import (
	"os"

	"github.com/talgya/backlot-mogul/cmd/backlot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
