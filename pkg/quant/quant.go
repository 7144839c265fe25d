// Package quant implements the lossless 16-to-10-bit requantization map
// that lets the brainwire codec transmit a narrow residual stream and
// still reconstruct the original 16-bit samples bit-for-bit.
//
// The samples this codec targets were produced by upscaling a 10-bit
// sensor reading to 16 bits through a fixed affine map. Quant recovers
// the 10-bit label with a floored division; Dequant reconstructs the
// original 16-bit sample with the empirically fitted inverse of that
// upscaler. The constants below are a fitted table, not a derivation,
// and are part of the wire contract: changing them changes every
// decoded sample.
package quant

import "math"

const (
	scale  = 64.061577
	offset = 31.034184
)

// Quant maps a 16-bit sample to its quantized value via floored
// division by 64 (floor(s/64), not truncation toward zero). An
// arithmetic right shift by 6 bits is floored division by 2^6 for
// negative operands, unlike Go's truncating '/'.
func Quant(s int16) int32 {
	return int32(s) >> 6
}

// Dequant inverts Quant using the fitted affine reconstruction of the
// original 10-to-16-bit upscaler. Round-trip with Quant is only
// guaranteed for samples that were actually produced by that upscaler,
// not for arbitrary 16-bit integers.
func Dequant(q int32) int16 {
	if q >= 0 {
		return int16(roundHalfAwayFromZero(float64(q)*scale + offset))
	}
	return int16(-roundHalfAwayFromZero(float64(-q-1)*scale+offset) - 1)
}

func roundHalfAwayFromZero(x float64) float64 {
	return math.Round(x)
}
