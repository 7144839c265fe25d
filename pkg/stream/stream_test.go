package stream

import (
	"testing"

	"github.com/phoboslab/brainwire/pkg/quant"
)

func roundTrip(t *testing.T, samples []int16, sampleRate uint32) []int16 {
	t.Helper()
	data, err := Encode(samples, sampleRate)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, rate, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rate != sampleRate {
		t.Fatalf("sample rate = %d, want %d", rate, sampleRate)
	}
	if len(got) != len(samples) {
		t.Fatalf("sample count = %d, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
	return data
}

// latticeSample returns the 16-bit sample the upscaler would have
// produced for quantized value q: the one class of input the codec is
// documented (spec.md §4.3, §8) to round-trip exactly.
func latticeSample(q int32) int16 {
	return quant.Dequant(q)
}

func TestEmptyStream(t *testing.T) {
	data := roundTrip(t, nil, 44100)
	// Only the header: N=0, R=44100, both Rice-coded with k=16.
	if len(data) == 0 {
		t.Fatalf("expected non-empty header-only output")
	}
}

func TestSingleSampleZero(t *testing.T) {
	// q=0 is the lattice point nearest raw zero; dequant(0) is the
	// sample value this codec actually reconstructs for it.
	roundTrip(t, []int16{latticeSample(0)}, 1)
}

func TestConstantStreamRoundTrip(t *testing.T) {
	samples := make([]int16, 100)
	s := latticeSample(1)
	for i := range samples {
		samples[i] = s
	}
	roundTrip(t, samples, 8000)
}

func TestAlternatingExtremes(t *testing.T) {
	hi := latticeSample(500)
	lo := latticeSample(-500)
	samples := make([]int16, 0, 20)
	for i := 0; i < 10; i++ {
		samples = append(samples, hi, lo)
	}
	roundTrip(t, samples, 8000)
}

func TestSineWaveCompressesBelowRaw(t *testing.T) {
	const n = 1000
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		qf := 312 * sinApprox(2*3.14159265*1000*float64(i)/8000)
		samples[i] = latticeSample(roundToInt32(qf))
	}
	data := roundTrip(t, samples, 8000)
	if len(data) >= 2*n {
		t.Fatalf("compressed size %d bytes, want strictly less than %d", len(data), 2*n)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	samples := []int16{
		latticeSample(0), latticeSample(1), latticeSample(-1), latticeSample(2),
		latticeSample(-16), latticeSample(16), latticeSample(511), latticeSample(-512),
	}
	a, err := Encode(samples, 48000)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(samples, 48000)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("encoding not deterministic: lengths %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("encoding not deterministic: byte %d differs", i)
		}
	}
}

func TestDecodeRejectsTruncatedStream(t *testing.T) {
	samples := []int16{
		latticeSample(0), latticeSample(1), latticeSample(-1),
		latticeSample(2), latticeSample(16), latticeSample(-16),
	}
	data, err := Encode(samples, 44100)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	truncated := data[:len(data)/2]
	if _, _, err := Decode(truncated); err == nil {
		t.Fatalf("Decode(truncated) succeeded, want error")
	}
}

// roundToInt32 rounds a float to the nearest integer, half away from
// zero, matching the rounding rule pkg/quant uses so test fixtures stay
// on the dequantizer lattice.
func roundToInt32(f float64) int32 {
	if f >= 0 {
		return int32(f + 0.5)
	}
	return int32(f - 0.5)
}

// sinApprox is a Taylor-series sine good enough to drive the
// compression-ratio seed scenario without importing math just for a
// test fixture.
func sinApprox(x float64) float64 {
	for x > 3.14159265 {
		x -= 2 * 3.14159265
	}
	for x < -3.14159265 {
		x += 2 * 3.14159265
	}
	result := x
	term := x
	for i := 1; i < 10; i++ {
		term *= -x * x / float64((2*i)*(2*i+1))
		result += term
	}
	return result
}
