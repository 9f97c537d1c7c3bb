package response

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Probe indices at which reference levels were recorded.
var refIndices = []int{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 209}

func TestProbeTable(t *testing.T) {
	probes := Probes()
	require.Len(t, probes, NumProbes)

	for i, f := range probes {
		want := 50 * math.Pow(2, float64(i)/24)
		if f != want {
			t.Fatalf("probe %d = %v, want %v", i, f, want)
		}

		assert.Equal(t, f, ProbeFrequency(i))
	}

	testutil.RequireStrictlyAscending(t, probes)
	assert.Equal(t, 50.0, probes[0])
	assert.InDelta(t, 100.0, probes[24], 1e-12)
	assert.InDelta(t, 20914.1178, probes[NumProbes-1], 1e-3)

	probes[0] = -1
	assert.Equal(t, 50.0, ProbeFrequency(0), "Probes must return a copy")
}

func TestAnalyzeShape(t *testing.T) {
	pts := Analyze(Params{Type: ladder.TypeLowPass2, Note: 69, CutoffNote: 80, Resonance: 30})
	require.Len(t, pts, NumProbes)
	testutil.RequireBitIdentical(t, Frequencies(pts), Probes())
	testutil.RequireFinite(t, Levels(pts))
}

func TestAnalyzeReferenceLevels(t *testing.T) {
	tests := []struct {
		params Params
		want   []float64
	}{
		{
			Params{Type: ladder.TypeLowPass1, Note: 69, CutoffNote: 69},
			[]float64{
				-0.104517, -0.327536, -0.999799, -2.843195, -6.962713, -13.801586,
				-22.503519, -32.000078, -41.624573, -50.771732, -58.007456, -59.543337,
			},
		},
		{
			Params{Type: ladder.TypeHighPass1, Note: 69, CutoffNote: 69},
			[]float64{
				-19.504284, -14.598656, -9.917734, -5.822668, -2.866558, -1.272882,
				-0.619562, -0.391648, -0.317339, -0.293749, -0.286663, -0.285744,
			},
		},
		{
			Params{Type: ladder.TypeLowPass2, Note: 69, CutoffNote: 60},
			[]float64{
				-0.044115, -0.139643, -0.439544, -1.358964, -3.993907, -10.423717,
				-22.376292, -39.103556, -58.916476, -82.322751, -119.918341, -179.353706,
			},
		},
		{
			Params{Type: ladder.TypeHighPass2, Note: 69, CutoffNote: 60, Resonance: 64},
			[]float64{
				-22.732217, -17.648180, -12.415395, -6.678954, 1.002475, 8.835325,
				0.810622, -0.127625, -0.024699, -0.001338, -0.000019, 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.params.Label(), func(t *testing.T) {
			pts := Analyze(tt.params)
			got := make([]float64, len(refIndices))
			for k, i := range refIndices {
				got[k] = pts[i].PowerDB
			}

			for k, want := range tt.want {
				if math.Abs(got[k]-want) > levelTolerance(want) {
					t.Fatalf("probe %d: got %.6f dB, want %.6f dB", refIndices[k], got[k], want)
				}
			}
		})
	}
}

// levelTolerance widens the allowed error at deep attenuation, where the
// last-digit rounding of the sine samples dominates the measured level.
func levelTolerance(wantDB float64) float64 {
	if wantDB < -120 {
		return 1e-3
	}

	return 1e-4
}

func TestAnalyzeIdempotent(t *testing.T) {
	for _, typ := range ladder.Types() {
		p := Params{Type: typ, Note: 60, Detune: 12, CutoffNote: 70, Resonance: 90}
		a := Analyze(p)
		b := Analyze(p)
		testutil.RequireBitIdentical(t, Levels(a), Levels(b))
	}
}

func TestAnalyzeWorkersMatchSequential(t *testing.T) {
	for _, typ := range ladder.Types() {
		p := Params{Type: typ, Note: 69, CutoffNote: 75, Resonance: 64}
		want := Analyze(p)

		for _, n := range []int{0, 2, 3, 8, NumProbes + 5} {
			got := Analyze(p, WithWorkers(n))
			testutil.RequireBitIdentical(t, Frequencies(got), Frequencies(want))
			testutil.RequireBitIdentical(t, Levels(got), Levels(want))
		}
	}
}

func TestAnalyzeFilterShapes(t *testing.T) {
	for _, typ := range ladder.Types() {
		pts := Analyze(Params{Type: typ, Note: 69, CutoffNote: 69})
		low, high := pts[0].PowerDB, pts[160].PowerDB

		if typ.IsHighPass() {
			assert.Greater(t, high, low, "%s should pass highs", typ)
		} else {
			assert.Greater(t, low, high, "%s should pass lows", typ)
		}
	}
}

func TestAnalyzeResonancePeak(t *testing.T) {
	p := Params{Type: ladder.TypeLowPass2, Note: 69, CutoffNote: 48, Resonance: 127}
	levels := Levels(Analyze(p))
	testutil.RequireFinite(t, levels)

	peak := testutil.ArgMax(levels)
	require.Positive(t, peak)
	require.Less(t, peak, NumProbes-1)
	assert.Greater(t, levels[peak], levels[peak-1])
	assert.Greater(t, levels[peak], levels[peak+1])
	assert.Greater(t, levels[peak], levels[0]+20)

	nominal := nearestProbe(p.Coefficients().CutoffHz(p.Type))
	assert.LessOrEqual(t, absInt(peak-nominal), 6,
		"peak at probe %d (%.1f Hz), nominal cutoff at probe %d", peak, ProbeFrequency(peak), nominal)
}

func TestAnalyzeReferenceScenario(t *testing.T) {
	p := Params{Type: ladder.TypeLowPass1, Note: 69, CutoffNote: 69}
	c := p.Coefficients()
	assert.InDelta(t, 0.06267, c.Cut, 1e-4)
	assert.Zero(t, c.Feedback)

	pts := Analyze(p)
	require.Len(t, pts, NumProbes)
	assert.Equal(t, 50.0, pts[0].FrequencyHz)
	assert.True(t, !math.IsInf(pts[0].PowerDB, 0) && !math.IsNaN(pts[0].PowerDB))
}

func TestAnalyzeSilentFilter(t *testing.T) {
	c := ladder.Coefficients{}

	for _, pt := range AnalyzeCoefficients(ladder.TypeLowPass1, c) {
		if !math.IsInf(pt.PowerDB, -1) {
			t.Fatalf("%.1f Hz: %v dB, want -Inf", pt.FrequencyHz, pt.PowerDB)
		}
	}

	// A closed one-pole high-pass is a wire.
	for _, pt := range AnalyzeCoefficients(ladder.TypeHighPass1, c) {
		assert.InDelta(t, 0, pt.PowerDB, 0.05, "%.1f Hz", pt.FrequencyHz)
	}
}

func nearestProbe(hz float64) int {
	best := 0
	for i, f := range probeTable {
		if math.Abs(f-hz) < math.Abs(probeTable[best]-hz) {
			best = i
		}
	}

	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func TestPointJSON(t *testing.T) {
	data, err := json.Marshal([]Point{
		{FrequencyHz: 50, PowerDB: -1.5},
		{FrequencyHz: 100, PowerDB: math.Inf(-1)},
		{FrequencyHz: 200, PowerDB: math.NaN()},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"frequency_hz": 50, "power_db": -1.5},
		{"frequency_hz": 100, "power_db": null},
		{"frequency_hz": 200, "power_db": null}
	]`, string(data))
}
