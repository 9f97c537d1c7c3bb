package response

import (
	"encoding/json"
	"sync"

	"github.com/cwbudde/algo-filterscope/dsp/buffer"
	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/dsp/signal"
)

// Point is one sample of a magnitude response.
type Point struct {
	FrequencyHz float64 `json:"frequency_hz"`
	PowerDB     float64 `json:"power_db"`
}

// MarshalJSON writes a non-finite level as null.
func (p Point) MarshalJSON() ([]byte, error) {
	type wire struct {
		FrequencyHz float64  `json:"frequency_hz"`
		PowerDB     *float64 `json:"power_db"`
	}

	w := wire{FrequencyHz: p.FrequencyHz}
	if core.IsFinite(p.PowerDB) {
		w.PowerDB = &p.PowerDB
	}

	return json.Marshal(w)
}

// Option configures Analyze, AnalyzeCoefficients and Transfer.
type Option func(*config)

type config struct {
	workers      int
	transferSize int
}

func defaultConfig() config {
	return config{
		workers:      1,
		transferSize: defaultTransferSize,
	}
}

// WithWorkers spreads the probes over n goroutines. Values below 2 run the
// probes sequentially. The result does not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Analyze measures the response of the filter described by p at every probe
// frequency. p is expected to be valid (see Params.Validate).
func Analyze(p Params, opts ...Option) []Point {
	return AnalyzeCoefficients(p.Type, p.Coefficients(), opts...)
}

// AnalyzeCoefficients measures the response of a filter of type t with
// coefficients c. The result has NumProbes points in ascending frequency.
// A probe whose steady-state output is silent reports -Inf dB.
func AnalyzeCoefficients(t ladder.Type, c ladder.Coefficients, opts ...Option) []Point {
	cfg := applyOptions(opts)
	points := make([]Point, NumProbes)

	workers := min(cfg.workers, NumProbes)
	if workers <= 1 {
		pr := newProber()
		defer pr.release()

		for i, freq := range probeTable {
			points[i] = pr.measure(t, c, freq)
		}

		return points
	}

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			pr := newProber()
			defer pr.release()

			for i := w; i < NumProbes; i += workers {
				points[i] = pr.measure(t, c, probeTable[i])
			}
		}()
	}

	wg.Wait()

	return points
}

var probeBuffers = buffer.NewPool(core.ProbeLength)

// prober measures one probe at a time with buffers borrowed from
// probeBuffers. release must be called when done.
type prober struct {
	gen *signal.Generator
	in  []float64
	out []float64
}

func newProber() *prober {
	return &prober{
		gen: signal.NewGenerator(signal.WithSampleRate(core.SampleRate)),
		in:  probeBuffers.Get(),
		out: probeBuffers.Get(),
	}
}

func (pr *prober) release() {
	probeBuffers.Put(pr.in)
	probeBuffers.Put(pr.out)
	pr.in, pr.out = nil, nil
}

// measure overwrites both buffers completely, so stale pool contents never
// leak into a result.
func (pr *prober) measure(t ladder.Type, c ladder.Coefficients, freq float64) Point {
	pr.gen.SineInto(pr.in, freq)
	ladder.Simulate(t, c, pr.out, pr.in)

	peak := signal.Peak(pr.out[core.SteadyStateStart:])

	return Point{FrequencyHz: freq, PowerDB: core.LinearToDB(peak)}
}

// Frequencies extracts the frequency column of pts.
func Frequencies(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.FrequencyHz
	}

	return out
}

// Levels extracts the dB column of pts.
func Levels(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.PowerDB
	}

	return out
}
