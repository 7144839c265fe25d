package main

import (
	"fmt"
	"os"

	"github.com/phoboslab/brainwire/internal/pcm"
	"github.com/phoboslab/brainwire/pkg/stream"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show sample count, sample rate, and compression ratio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showInfo(args[0])
	},
}

func showInfo(path string) error {
	switch detectContainer(path) {
	case containerPCM:
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()

		data, err := pcm.Read(f)
		if err != nil {
			return fmt.Errorf("decode WAV: %w", err)
		}

		fmt.Printf("File:        %s\n", path)
		fmt.Printf("Format:      wav\n")
		fmt.Printf("Sample Rate: %d Hz\n", data.SampleRate)
		fmt.Printf("Channels:    1\n")
		fmt.Printf("Bit Depth:   16\n")
		fmt.Printf("Samples:     %d\n", len(data.Samples))
		return nil

	case containerBrainwire:
		stat, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat input file: %w", err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		samples, sampleRate, err := stream.Decode(raw)
		if err != nil {
			return fmt.Errorf("decode brainwire stream: %w", err)
		}

		rawSize := int64(len(samples)) * 2
		ratio := 1.0
		if stat.Size() > 0 {
			ratio = float64(rawSize) / float64(stat.Size())
		}

		fmt.Printf("File:        %s\n", path)
		fmt.Printf("Format:      bw\n")
		fmt.Printf("Sample Rate: %d Hz\n", sampleRate)
		fmt.Printf("Channels:    1\n")
		fmt.Printf("Samples:     %d\n", len(samples))
		fmt.Printf("Compressed:  %d bytes (%.2fx compression)\n", stat.Size(), ratio)
		return nil

	default:
		return fmt.Errorf("unknown audio format for %s (expected .wav or .bw)", path)
	}
}
