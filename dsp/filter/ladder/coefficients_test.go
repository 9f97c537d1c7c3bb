package ladder

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-filterscope/dsp/pitch"
)

func TestDeriveReferenceScenario(t *testing.T) {
	c := Derive(69, 0, 69, 0)

	want := 2 * math.Pi * 440 / 44100
	if math.Abs(c.Cut-want) > 1e-12 {
		t.Fatalf("Cut = %v, want %v", c.Cut, want)
	}

	if math.Abs(c.Cut-0.06269) > 1e-4 {
		t.Fatalf("Cut = %v, want ~0.06269", c.Cut)
	}

	if c.Feedback != 0 || c.Resonance != 0 {
		t.Fatalf("Feedback = %v, Resonance = %v, want 0, 0", c.Feedback, c.Resonance)
	}
}

func TestDeriveFeedback(t *testing.T) {
	c := Derive(60, 0, 60, MaxResonance)
	if c.Resonance != 1 {
		t.Fatalf("Resonance = %v, want 1", c.Resonance)
	}

	want := 1 + 1/(1-c.Cut)
	if c.Feedback != want {
		t.Fatalf("Feedback = %v, want %v", c.Feedback, want)
	}

	half := Derive(60, 0, 60, 64)
	if math.Abs(half.Resonance-64.0/127.0) > 1e-15 {
		t.Fatalf("Resonance = %v, want %v", half.Resonance, 64.0/127.0)
	}
}

func TestDeriveClamp(t *testing.T) {
	var low, high, mid int

	for note := pitch.MinNote; note <= pitch.MaxNote; note += 3 {
		for _, detune := range []int{pitch.MinDetune, 0, pitch.MaxDetune} {
			for cutoff := pitch.MinNote; cutoff <= pitch.MaxNote; cutoff += 5 {
				raw := RawCut(note, detune, cutoff)
				c := Derive(note, detune, cutoff, 0)

				switch {
				case raw < MinCut:
					low++
					if c.Cut != 0 {
						t.Fatalf("Derive(%d, %d, %d): raw %v below threshold, Cut = %v, want 0", note, detune, cutoff, raw, c.Cut)
					}
				case raw > MaxCut:
					high++
					if c.Cut != 1-0.0001 {
						t.Fatalf("Derive(%d, %d, %d): raw %v above threshold, Cut = %v, want %v", note, detune, cutoff, raw, c.Cut, 1-0.0001)
					}
				default:
					mid++
					if c.Cut != raw {
						t.Fatalf("Derive(%d, %d, %d): Cut = %v, want unclamped %v", note, detune, cutoff, c.Cut, raw)
					}
				}
			}
		}
	}

	if low == 0 || high == 0 || mid == 0 {
		t.Fatalf("grid did not cover all clamp regions: low=%d high=%d mid=%d", low, high, mid)
	}
}

func TestDeriveClampEdges(t *testing.T) {
	if c := Derive(0, 0, 0, 0); c.Cut != 0 {
		t.Fatalf("lowest notes: Cut = %v, want 0", c.Cut)
	}

	c := Derive(127, 99, 127, 127)
	if c.Cut != MaxCut {
		t.Fatalf("highest notes: Cut = %v, want %v", c.Cut, MaxCut)
	}

	// 1-Cut stays well away from zero so the feedback term is finite.
	if math.IsInf(c.Feedback, 0) || math.IsNaN(c.Feedback) {
		t.Fatalf("Feedback = %v, want finite", c.Feedback)
	}
}

func TestCutoffHz(t *testing.T) {
	c := Derive(69, 0, 69, 0)

	if got := c.CutoffHz(TypeLowPass1); math.Abs(got-440) > 1e-9 {
		t.Fatalf("one-pole CutoffHz = %v, want 440", got)
	}

	if got, want := c.CutoffHz(TypeLowPass2), c.Cut*44100/2; got != want {
		t.Fatalf("ladder CutoffHz = %v, want %v", got, want)
	}
}
