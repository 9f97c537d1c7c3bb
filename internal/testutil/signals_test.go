package testutil

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine(11025, 44100, 2, 5)
	want := []float64{0, 2, 0, -2, 0}
	RequireSliceNearlyEqual(t, s, want, 1e-12)
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want exactly 0", s[0])
	}
}

func TestNoiseReproducible(t *testing.T) {
	a := Noise(42, 0.5, 64)
	b := Noise(42, 0.5, 64)
	RequireBitIdentical(t, a, b)
	for i, v := range a {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}

	c := Noise(43, 0.5, 64)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(4, 2)
	RequireSliceNearlyEqual(t, x, []float64{0, 0, 1, 0}, 0)

	for _, v := range Impulse(3, 5) {
		if v != 0 {
			t.Fatalf("out-of-range impulse produced %v", v)
		}
	}
}

func TestMix(t *testing.T) {
	got := Mix(2, []float64{1, 2, 3}, -1, []float64{1, 1})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("Mix = %v, want [1 3]", got)
	}

	if v := Mix(0.5, []float64{math.Inf(1)}, 0, []float64{0}); !math.IsInf(v[0], 1) {
		t.Fatalf("Mix = %v, want +Inf", v)
	}
}
