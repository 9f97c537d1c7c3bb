package response

import (
	"math"
	"sort"
	"testing"

	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestTransferMatchesSineBelow2kHz(t *testing.T) {
	cases := []Params{
		{Type: ladder.TypeLowPass1, Note: 69, CutoffNote: 69},
		{Type: ladder.TypeHighPass1, Note: 69, CutoffNote: 69},
		{Type: ladder.TypeLowPass2, Note: 69, CutoffNote: 60},
		{Type: ladder.TypeHighPass2, Note: 69, CutoffNote: 60, Resonance: 64},
	}

	for _, p := range cases {
		t.Run(p.Label(), func(t *testing.T) {
			sine := Analyze(p)

			fft, err := Transfer(p.Type, p.Coefficients())
			require.NoError(t, err)
			require.Len(t, fft, NumProbes)
			testutil.RequireBitIdentical(t, Frequencies(fft), Probes())

			n := sort.SearchFloat64s(Probes(), 2000)
			testutil.RequireSliceNearlyEqual(t, Levels(fft[:n]), Levels(sine[:n]), 0.5)
		})
	}
}

func TestTransferSilentFilter(t *testing.T) {
	pts, err := Transfer(ladder.TypeLowPass2, ladder.Coefficients{})
	require.NoError(t, err)

	for _, pt := range pts {
		require.True(t, math.IsInf(pt.PowerDB, -1), "%.1f Hz: %v", pt.FrequencyHz, pt.PowerDB)
	}
}

func TestWithTransferSizeIgnoresNonPositive(t *testing.T) {
	c := ladder.Derive(69, 0, 69, 0)

	want, err := Transfer(ladder.TypeLowPass1, c)
	require.NoError(t, err)

	got, err := Transfer(ladder.TypeLowPass1, c, WithTransferSize(0), WithTransferSize(-8))
	require.NoError(t, err)
	testutil.RequireBitIdentical(t, Levels(got), Levels(want))
}
