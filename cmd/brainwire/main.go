// brainwire is a command-line codec for single-channel 16-bit PCM
// neural recordings. It converts between a WAV container and the
// compact brainwire bitstream, choosing direction from file extension.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
