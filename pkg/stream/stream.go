// Package stream implements the brainwire bitstream codec: header
// framing, the first-order predictor, and the adaptive Rice-parameter
// control loop described in spec section 4.4. It is the component
// that drives internal/rice and internal/bitio against pkg/quant.
package stream

import (
	"errors"
	"fmt"

	"github.com/phoboslab/brainwire/internal/bitio"
	"github.com/phoboslab/brainwire/internal/rice"
	"github.com/phoboslab/brainwire/pkg/quant"
)

// headerK is the fixed, non-adaptive Rice parameter used only for the
// two header fields (sample count and sample rate). It is not part of
// the per-sample adaptive-k loop.
const headerK = 16

// initialK is the adaptive controller's starting value, in force
// immediately after the header is written or read.
const initialK = 3.0

// ErrInvalidInput is returned when the caller asks Encode to encode
// something this codec's precondition forbids (only mono 16-bit PCM is
// accepted upstream; the codec itself only validates the sample count
// against a uint32 header field).
var ErrInvalidInput = errors.New("stream: invalid input")

// ErrUnexpectedEndOfStream is returned by Decode when the compressed
// buffer is exhausted before the declared sample count is reached.
var ErrUnexpectedEndOfStream = bitio.ErrUnexpectedEndOfStream

// Encode compresses samples, recorded at sampleRate Hz, into a
// brainwire bitstream. Encoding a well-formed sample slice cannot
// otherwise fail.
func Encode(samples []int16, sampleRate uint32) ([]byte, error) {
	n := len(samples)
	if uint64(n) > 1<<32-1 {
		return nil, fmt.Errorf("%w: sample count %d out of range", ErrInvalidInput, n)
	}

	w := bitio.NewWriter()

	if _, err := rice.Encode(w, int64(n), headerK); err != nil {
		return nil, err
	}
	if _, err := rice.Encode(w, int64(sampleRate), headerK); err != nil {
		return nil, err
	}

	qPrev := int32(0)
	kFloat := initialK

	for _, s := range samples {
		q := quant.Quant(s)
		r := int64(q - qPrev)
		qPrev = q

		kInt := rice.ClampK(kFloat)
		length, err := rice.Encode(w, r, kInt)
		if err != nil {
			return nil, err
		}
		kFloat = updateK(kFloat, length)
	}

	return w.Flush()
}

// Decode reconstructs the sample sequence and sample rate encoded by
// Encode. It reads exactly N+2 Rice codewords (the header's two fields
// plus one per sample) and never reads past that point.
func Decode(data []byte) ([]int16, uint32, error) {
	r := bitio.NewReader(data)

	nSigned, _, err := rice.Decode(r, headerK)
	if err != nil {
		return nil, 0, err
	}
	rateSigned, _, err := rice.Decode(r, headerK)
	if err != nil {
		return nil, 0, err
	}
	n := int(nSigned)
	sampleRate := uint32(rateSigned)

	samples := make([]int16, n)
	qPrev := int32(0)
	kFloat := initialK

	for i := 0; i < n; i++ {
		kInt := rice.ClampK(kFloat)
		resid, length, err := rice.Decode(r, kInt)
		if err != nil {
			return nil, 0, err
		}
		q := qPrev + int32(resid)
		qPrev = q
		samples[i] = quant.Dequant(q)
		kFloat = updateK(kFloat, length)
	}

	return samples, sampleRate, nil
}

// updateK applies the adaptive-k exponential moving average. The exact
// constants and evaluation order are part of the wire contract: the
// encoder and decoder must compute identical IEEE-754 double-precision
// bits or the two state machines desynchronize.
func updateK(kFloat float64, codewordLen int) float64 {
	return (kFloat * 0.99) + ((float64(codewordLen) / 1.55) * 0.01)
}
