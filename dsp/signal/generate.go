package signal

import (
	"errors"
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filterscope/dsp/core"
)

var errEmptyInput = errors.New("signal: input must not be empty")

// Generator creates deterministic unit-amplitude test signals.
type Generator struct {
	sampleRate float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate overrides the analysis sample rate. Non-positive values are
// ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// NewGenerator creates a generator running at core.SampleRate unless an
// option says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: core.SampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Sine generates a unit sine wave starting at phase zero.
func (g *Generator) Sine(freqHz float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	g.SineInto(out, freqHz)

	return out, nil
}

// SineInto fills dst with sin(2*pi*f*(i/sampleRate)). The time of each
// sample is computed from its index, so no phase error accumulates.
func (g *Generator) SineInto(dst []float64, freqHz float64) {
	w := 2 * math.Pi * freqHz
	for i := range dst {
		dst[i] = math.Sin(w * (float64(i) / g.sampleRate))
	}
}

// Impulse returns a unit impulse of the given length.
func Impulse(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: impulse samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	out[0] = 1

	return out, nil
}

// Peak returns the largest absolute sample value of data, 0 when empty.
func Peak(data []float64) float64 {
	return vecmath.MaxAbs(data)
}

// Normalize scales data to target peak amplitude and returns a new slice.
// Silent input stays silent.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, errEmptyInput
	}

	out := make([]float64, len(data))

	peak := Peak(data)
	if peak == 0 || targetPeak == 0 || !core.IsFinite(peak) {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/peak)

	return out, nil
}
