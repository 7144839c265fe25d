package main

import (
	"fmt"
	"os"

	"github.com/phoboslab/brainwire/internal/pcm"
	"github.com/phoboslab/brainwire/pkg/stream"
)

// encodeFile reads a mono 16-bit WAV file and writes its brainwire
// encoding. It returns the raw PCM byte size and the compressed byte
// size, for the CLI's compression-ratio summary.
func encodeFile(inPath, outPath string) (rawSize, compressedSize int64, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	data, err := pcm.Read(in)
	if err != nil {
		return 0, 0, fmt.Errorf("decode WAV: %w", err)
	}

	compressed, err := stream.Encode(data.Samples, data.SampleRate)
	if err != nil {
		return 0, 0, fmt.Errorf("encode brainwire stream: %w", err)
	}

	if err := os.WriteFile(outPath, compressed, 0o644); err != nil {
		return 0, 0, fmt.Errorf("write output file: %w", err)
	}

	return int64(len(data.Samples)) * 2, int64(len(compressed)), nil
}
