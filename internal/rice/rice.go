// Package rice implements Golomb-Rice coding of signed integers:
// zig-zag folding to unsigned, then a unary quotient plus a fixed-width
// remainder, against the bitio MSB-first bitstream. The coder is
// stateless; the caller supplies k for each codeword.
package rice

import "github.com/phoboslab/brainwire/internal/bitio"

// MaxK is the largest Rice parameter the codec will use. k is a
// floating-point controller in pkg/stream; callers must clamp it to
// [0, MaxK] before truncating to an integer and passing it here.
const MaxK = 16

// Fold maps a signed integer to its zig-zag unsigned image: 2v for
// v >= 0, -2v-1 for v < 0. Small-magnitude values of either sign map to
// small unsigned values, which is what makes the unary quotient short.
func Fold(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// Unfold inverts Fold.
func Unfold(u uint64) int64 {
	v := int64(u >> 1)
	if u&1 != 0 {
		return -v - 1
	}
	return v
}

// Encode writes v as a Rice codeword with parameter k and returns the
// codeword length in bits: len(unary quotient) + 1 (terminator) + k.
func Encode(w *bitio.Writer, v int64, k int) (int, error) {
	u := Fold(v)
	msbs := u >> uint(k)
	lsbs := u & (uint64(1)<<uint(k) - 1)

	// msbs zero bits followed by a single one-bit terminator.
	for i := uint64(0); i < msbs; i++ {
		if err := w.Write(0, 1); err != nil {
			return 0, err
		}
	}
	if err := w.Write(1, 1); err != nil {
		return 0, err
	}
	if k > 0 {
		if err := w.Write(lsbs, uint(k)); err != nil {
			return 0, err
		}
	}
	return int(msbs) + 1 + k, nil
}

// Decode reads one Rice codeword with parameter k and returns the
// decoded value along with the codeword length in bits.
func Decode(r *bitio.Reader, k int) (int64, int, error) {
	var msbs uint64
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, 0, err
		}
		if bit {
			break
		}
		msbs++
	}

	var lsbs uint64
	if k > 0 {
		v, err := r.Read(uint(k))
		if err != nil {
			return 0, 0, err
		}
		lsbs = v
	}

	u := (msbs << uint(k)) | lsbs
	return Unfold(u), int(msbs) + 1 + k, nil
}

// ClampK truncates a floating-point Rice-parameter controller value to
// a non-negative integer in [0, MaxK], as required before every Encode
// or Decode call.
func ClampK(k float64) int {
	if k < 0 {
		return 0
	}
	if k > MaxK {
		return MaxK
	}
	return int(k)
}
