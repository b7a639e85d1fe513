// Command sketchbook lists, runs and exports the bundled sketches.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
