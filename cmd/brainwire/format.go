package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// container is the tagged variant the CLI dispatches on: the two
// container kinds brainwire knows how to read or write, selected by
// file extension. There is no extensibility requirement here (design
// note §9) -- a two-way table is the whole dispatcher.
type container int

const (
	containerUnknown container = iota
	containerPCM
	containerBrainwire
)

func detectContainer(path string) container {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return containerPCM
	case ".bw":
		return containerBrainwire
	default:
		return containerUnknown
	}
}

func (c container) String() string {
	switch c {
	case containerPCM:
		return "wav"
	case containerBrainwire:
		return "bw"
	default:
		return "unknown"
	}
}

// directionFor infers encode-vs-decode from the input/output pair: a
// .wav input paired with a .bw output encodes, the reverse decodes.
// Any other pairing is rejected with a diagnostic.
func directionFor(inPath, outPath string) (in, out container, err error) {
	in = detectContainer(inPath)
	out = detectContainer(outPath)
	switch {
	case in == containerPCM && out == containerBrainwire:
		return in, out, nil
	case in == containerBrainwire && out == containerPCM:
		return in, out, nil
	case in == containerUnknown:
		return in, out, fmt.Errorf("cannot detect input format for %s (expected .wav or .bw)", inPath)
	case out == containerUnknown:
		return in, out, fmt.Errorf("cannot detect output format for %s (expected .wav or .bw)", outPath)
	default:
		return in, out, fmt.Errorf("unsupported conversion: %s to %s", in, out)
	}
}
