// Package pcm is the PCM container collaborator: it reads and writes
// mono 16-bit WAV files, handing the brainwire codec a plain []int16
// sample slice plus a sample rate, and nothing else. Framing, endian
// normalization, and the mono/16-bit precondition are its job; the
// codec in pkg/stream never looks at a WAV byte.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidInput is returned when the WAV file is not mono 16-bit
// PCM, which is the only shape the brainwire codec accepts.
var ErrInvalidInput = errors.New("pcm: input is not mono 16-bit PCM")

// Data is the descriptor the codec round-trips: one channel of 16-bit
// samples at a fixed sample rate.
type Data struct {
	Samples    []int16
	SampleRate uint32
}

// Read decodes a mono 16-bit WAV stream into a Data descriptor.
func Read(r io.Reader) (*Data, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("pcm: read input: %w", err)
		}
		rs = bytes.NewReader(buf)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("pcm: not a valid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("pcm: seek to PCM data: %w", err)
	}

	if int(dec.NumChans) != 1 {
		return nil, fmt.Errorf("%w: channels=%d", ErrInvalidInput, dec.NumChans)
	}
	if int(dec.BitDepth) != 16 {
		return nil, fmt.Errorf("%w: bits_per_sample=%d", ErrInvalidInput, dec.BitDepth)
	}

	format := &audio.Format{SampleRate: int(dec.SampleRate), NumChannels: 1}
	const chunk = 4096
	tmp := &audio.IntBuffer{Data: make([]int, chunk), Format: format}

	samples := make([]int16, 0)
	for {
		n, err := dec.PCMBuffer(tmp)
		if err != nil {
			return nil, fmt.Errorf("pcm: decode PCM: %w", err)
		}
		if n == 0 {
			break
		}
		for _, v := range tmp.Data[:n] {
			samples = append(samples, int16(v))
		}
	}

	return &Data{Samples: samples, SampleRate: dec.SampleRate}, nil
}

// Write encodes a Data descriptor as a mono 16-bit WAV stream.
func Write(w io.WriteSeeker, d *Data) error {
	enc := wav.NewEncoder(w, int(d.SampleRate), 16, 1, 1)

	ints := make([]int, len(d.Samples))
	for i, s := range d.Samples {
		ints[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Data:           ints,
		Format:         &audio.Format{SampleRate: int(d.SampleRate), NumChannels: 1},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("pcm: encode WAV: %w", err)
	}
	return enc.Close()
}
