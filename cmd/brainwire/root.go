package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	overwrite bool
	quiet     bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:     "brainwire <input> <output>",
	Short:   "Lossless codec for 16-bit mono neural PCM recordings",
	Version: version,
	Long: `brainwire converts between a mono 16-bit WAV container and the
compact brainwire bitstream. Direction is inferred from file extension:

  brainwire recording.wav recording.bw   # encode
  brainwire recording.bw  recording.wav  # decode`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing output file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	dir, _, err := directionFor(inPath, outPath)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output file already exists: %s (use --overwrite)", outPath)
		}
	}

	if verbose && !quiet {
		fmt.Printf("Converting: %s -> %s\n", inPath, outPath)
	}

	var rawSize, compressedSize int64
	switch dir {
	case containerPCM:
		rawSize, compressedSize, err = encodeFile(inPath, outPath)
	case containerBrainwire:
		compressedSize, rawSize, err = decodeFile(inPath, outPath)
	}
	if err != nil {
		os.Remove(outPath)
		return err
	}

	if !quiet {
		outSize := compressedSize
		if dir == containerBrainwire {
			outSize = rawSize
			if st, err := os.Stat(outPath); err == nil {
				outSize = st.Size()
			}
		}
		printCompressionSummary(outPath, outSize, rawSize, compressedSize)
	}
	return nil
}

// printCompressionSummary prints the required summary line from
// spec.md section 6: "<out>: size: <kb> kb (<bytes> bytes) = <ratio>x
// compression". outSize is the actual byte size of the file named by
// outPath; the ratio is always raw PCM bytes (2 per sample) over
// compressed brainwire bytes, regardless of which direction was run.
func printCompressionSummary(outPath string, outSize, rawSize, compressedSize int64) {
	kb := float64(outSize) / 1024.0
	ratio := 1.0
	if compressedSize > 0 {
		ratio = float64(rawSize) / float64(compressedSize)
	}
	fmt.Printf("%s: size: %.1f kb (%d bytes) = %.2fx compression\n", outPath, kb, outSize, ratio)
}
