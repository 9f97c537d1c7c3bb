package response

import "math"

const (
	// NumProbes is the number of probe frequencies.
	NumProbes = 210

	probeBaseHz         = 50.0
	probeStepsPerOctave = 24
)

var probeTable = func() [NumProbes]float64 {
	var t [NumProbes]float64
	for i := range t {
		t[i] = probeBaseHz * math.Pow(2, float64(i)/probeStepsPerOctave)
	}

	return t
}()

// Probes returns a copy of the probe frequencies in ascending order.
func Probes() []float64 {
	out := make([]float64, NumProbes)
	copy(out, probeTable[:])

	return out
}

// ProbeFrequency returns the frequency of probe i. It panics if i is out of
// range.
func ProbeFrequency(i int) float64 {
	return probeTable[i]
}
