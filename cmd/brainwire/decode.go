package main

import (
	"fmt"
	"os"

	"github.com/phoboslab/brainwire/internal/pcm"
	"github.com/phoboslab/brainwire/pkg/stream"
)

// decodeFile reads a brainwire bitstream and writes the reconstructed
// mono 16-bit WAV file. It returns the compressed byte size and the
// reconstructed raw PCM byte size, for the CLI's compression-ratio
// summary.
func decodeFile(inPath, outPath string) (compressedSize, rawSize int64, err error) {
	compressed, err := os.ReadFile(inPath)
	if err != nil {
		return 0, 0, fmt.Errorf("read input file: %w", err)
	}

	samples, sampleRate, err := stream.Decode(compressed)
	if err != nil {
		return 0, 0, fmt.Errorf("decode brainwire stream: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if err := pcm.Write(out, &pcm.Data{Samples: samples, SampleRate: sampleRate}); err != nil {
		return 0, 0, fmt.Errorf("encode WAV: %w", err)
	}

	return int64(len(compressed)), int64(len(samples)) * 2, nil
}
