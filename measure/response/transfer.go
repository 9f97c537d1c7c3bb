package response

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/dsp/signal"
)

const defaultTransferSize = 1 << 16

// WithTransferSize sets the impulse-response length used by Transfer. It is
// also the FFT size, so it must be a size algo-fft can plan. Non-positive
// values keep the default of 65536.
func WithTransferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.transferSize = n
		}
	}
}

// Transfer computes the magnitude response of a filter of type t from the FFT
// of its impulse response, read at the bin nearest to each probe frequency.
// For the linear topologies this matches AnalyzeCoefficients to within the
// bin spacing, without the ring-up of a sine probe.
func Transfer(t ladder.Type, c ladder.Coefficients, opts ...Option) ([]Point, error) {
	cfg := applyOptions(opts)
	n := cfg.transferSize

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: transfer plan of size %d: %w", n, err)
	}

	ir, err := signal.Impulse(n)
	if err != nil {
		return nil, fmt.Errorf("response: transfer impulse: %w", err)
	}

	ladder.Simulate(t, c, ir, ir)

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, fmt.Errorf("response: transfer forward FFT: %w", err)
	}

	binHz := core.SampleRate / float64(n)
	points := make([]Point, NumProbes)

	for i, freq := range probeTable {
		bin := int(math.Round(freq / binHz))
		if bin >= n {
			bin = n - 1
		}

		points[i] = Point{FrequencyHz: freq, PowerDB: core.LinearToDB(cmplx.Abs(spectrum[bin]))}
	}

	return points, nil
}
