package testutil

import (
	"math"
	"math/rand"
)

// Sine returns amplitude*sin(2*pi*f*(i/sampleRate)) for i in [0, length).
// Sample times are derived from the index, matching the probe generator.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz
	for i := range out {
		out[i] = amplitude * math.Sin(w*(float64(i)/sampleRate))
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a fixed
// seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos. Out-of-range positions give
// silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Mix returns a*x + b*y. The shorter slice sets the length.
func Mix(a float64, x []float64, b float64, y []float64) []float64 {
	out := make([]float64, min(len(x), len(y)))
	for i := range out {
		out[i] = a*x[i] + b*y[i]
	}
	return out
}
