package ladder

import (
	"math"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/pitch"
)

const (
	// MaxResonance is the upper bound of the integer resonance control.
	MaxResonance = 127

	// MinCut is the smallest cutoff coefficient kept as-is. Smaller values
	// snap to zero.
	MinCut = 1.0 / 127.0

	// MaxCut is the largest cutoff coefficient. Larger values are limited
	// to it so that 1-cut never reaches zero.
	MaxCut = 1.0 - 0.0001

	referenceHz = 440.0
)

// Coefficients holds the normalized parameters driving a Filter.
type Coefficients struct {
	// Cut is the per-sample pole coefficient in [0, MaxCut].
	Cut float64
	// Feedback is the one-pole resonance term, res + res/(1-Cut).
	Feedback float64
	// Resonance is the resonance control scaled to [0, 1]. The two-pole
	// ladder derives its own compensation curve from it.
	Resonance float64
}

// Derive converts note-scaled controls into filter coefficients.
//
// note and detune select the reference pitch the cutoff is scaled against;
// cutoffNote and resonance are the filter controls. Inputs are expected to
// be in range (see package pitch and MaxResonance); no checks are made.
func Derive(note, detune, cutoffNote, resonance int) Coefficients {
	cut := RawCut(note, detune, cutoffNote)
	if cut < MinCut {
		cut = 0
	}

	if cut > MaxCut {
		cut = MaxCut
	}

	res := float64(resonance) / MaxResonance

	return Coefficients{
		Cut:       cut,
		Feedback:  res + res/(1-cut),
		Resonance: res,
	}
}

// RawCut returns the cutoff coefficient before it is snapped into
// [0, MaxCut].
func RawCut(note, detune, cutoffNote int) float64 {
	k := pitch.Frequency(note, detune) * (2 * math.Pi / (core.SampleRate * referenceHz))
	return pitch.Frequency(cutoffNote, 0) * k
}

// CutoffHz returns the nominal cutoff frequency of a filter of type t built
// from c. The one-pole types treat Cut as an angular frequency per sample,
// the ladder treats it as a fraction of the Nyquist frequency, so the same
// coefficients tune the two families differently.
func (c Coefficients) CutoffHz(t Type) float64 {
	switch t {
	case TypeLowPass2, TypeHighPass2:
		return c.Cut * core.SampleRate / 2
	default:
		return c.Cut * core.SampleRate / (2 * math.Pi)
	}
}
