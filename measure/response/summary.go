package response

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
)

const (
	passbandProbes = 8
	edgeDropDB     = 3.0
)

// Summary condenses a response into a few figures.
type Summary struct {
	// Peak is the loudest finite point.
	Peak Point `json:"peak"`
	// Floor is the quietest finite point.
	Floor Point `json:"floor"`
	// PassbandDB is the mean level of the eight probes deepest in the
	// passband: the lowest frequencies for low-pass types, the highest for
	// high-pass types.
	PassbandDB float64 `json:"passband_db"`
	// EdgeHz is the first probe, walking from the passband towards the
	// stopband, lying more than 3 dB below PassbandDB. Zero if none does.
	EdgeHz float64 `json:"edge_hz"`
}

// Summarize derives a Summary from the response pts of a filter of type t.
// Non-finite levels are skipped. An empty or all non-finite response yields
// the zero Summary.
func Summarize(t ladder.Type, pts []Point) Summary {
	finite := make([]int, 0, len(pts))
	for i, p := range pts {
		if core.IsFinite(p.PowerDB) {
			finite = append(finite, i)
		}
	}

	if len(finite) == 0 {
		return Summary{}
	}

	levels := make([]float64, len(finite))
	for k, i := range finite {
		levels[k] = pts[i].PowerDB
	}

	s := Summary{
		Peak:  pts[finite[floats.MaxIdx(levels)]],
		Floor: pts[finite[floats.MinIdx(levels)]],
	}

	// finite is ascending, so the passband sits at one of its ends.
	band := levels[:min(passbandProbes, len(levels))]
	if t.IsHighPass() {
		band = levels[max(0, len(levels)-passbandProbes):]
	}

	s.PassbandDB = floats.Sum(band) / float64(len(band))

	threshold := s.PassbandDB - edgeDropDB
	for k := range finite {
		if t.IsHighPass() {
			k = len(finite) - 1 - k
		}

		if levels[k] < threshold {
			s.EdgeHz = pts[finite[k]].FrequencyHz
			break
		}
	}

	return s
}
