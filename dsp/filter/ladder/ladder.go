package ladder

import (
	"fmt"
	"strings"
)

// Type selects the filter topology.
type Type int

const (
	// TypeLowPass1 is the coupled one-pole low-pass with feedback resonance.
	TypeLowPass1 Type = iota
	// TypeHighPass1 is the complement of TypeLowPass1: input minus the
	// first stage.
	TypeHighPass1
	// TypeLowPass2 is the four-stage ladder low-pass.
	TypeLowPass2
	// TypeHighPass2 is the four-stage ladder high-pass: compensated input
	// minus the last stage.
	TypeHighPass2
)

var allTypes = [...]Type{TypeLowPass1, TypeHighPass1, TypeLowPass2, TypeHighPass2}

// Types returns all filter types in declaration order.
func Types() []Type {
	return append([]Type(nil), allTypes[:]...)
}

func (t Type) String() string {
	switch t {
	case TypeLowPass1:
		return "lpf1"
	case TypeHighPass1:
		return "hpf1"
	case TypeLowPass2:
		return "lpf2"
	case TypeHighPass2:
		return "hpf2"
	default:
		return "unknown"
	}
}

// Code returns the MML filter code of t: "1", "-1", "2" or "-2".
func (t Type) Code() string {
	switch t {
	case TypeLowPass1:
		return "1"
	case TypeHighPass1:
		return "-1"
	case TypeLowPass2:
		return "2"
	case TypeHighPass2:
		return "-2"
	default:
		return "?"
	}
}

// IsHighPass reports whether t passes frequencies above the cutoff.
func (t Type) IsHighPass() bool {
	return t == TypeHighPass1 || t == TypeHighPass2
}

// ParseType accepts a type name ("lpf2") or MML code ("2"), case-insensitive.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range allTypes {
		if key == t.String() || key == t.Code() {
			return t, nil
		}
	}

	return 0, fmt.Errorf("ladder: unknown filter type: %q", s)
}

// MarshalText encodes t by its name.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ladder: invalid filter type: %d", t)
	}

	return []byte(t.String()), nil
}

// UnmarshalText accepts anything ParseType does.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Valid reports whether t is one of the four topologies.
func (t Type) Valid() bool {
	return t >= TypeLowPass1 && t <= TypeHighPass2
}

// State contains the filter taps. B1 is the single one-pole output; the
// ladder uses all five, with B0 holding the previous compensated input.
type State struct {
	B [5]float64
}

// Filter runs one of the four topologies sample by sample.
type Filter struct {
	typ    Type
	coeffs Coefficients

	// ladder terms, constant for a given Cut and Resonance
	p, f, q float64

	state State
}

// New creates a filter of type t with zeroed state.
func New(t Type, c Coefficients) (*Filter, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ladder: invalid filter type: %d", t)
	}

	f := newFilter(t, c)

	return &f, nil
}

func newFilter(t Type, c Coefficients) Filter {
	q := 1 - c.Cut
	p := c.Cut + 0.8*c.Cut*q

	return Filter{
		typ:    t,
		coeffs: c,
		p:      p,
		f:      p + p - 1,
		q:      c.Resonance * (1 + 0.5*q*(1-q+5.6*q*q)),
	}
}

// Type returns the filter topology.
func (f *Filter) Type() Type { return f.typ }

// Coefficients returns the coefficients the filter was built with.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// Reset clears all taps.
func (f *Filter) Reset() {
	f.state = State{}
}

// State returns a copy of the current taps.
func (f *Filter) State() State {
	return f.state
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	switch f.typ {
	case TypeLowPass1:
		f.onePole(x)
		return f.state.B[1]
	case TypeHighPass1:
		f.onePole(x)
		return x - f.state.B[0]
	case TypeLowPass2:
		f.ladder(x)
		return f.state.B[4]
	case TypeHighPass2:
		in := f.ladder(x)
		return in - f.state.B[4]
	default:
		return 0
	}
}

// ProcessInPlace filters buf in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Simulate runs a cold-start filter of type t over src and writes the result
// to dst. dst and src may alias. Unknown types produce silence.
func Simulate(t Type, c Coefficients, dst, src []float64) {
	f := newFilter(t, c)
	f.ProcessTo(dst, src)
}

func (f *Filter) onePole(x float64) {
	s := &f.state
	cut, fb := f.coeffs.Cut, f.coeffs.Feedback

	s.B[0] += cut * (x - s.B[0] + fb*(s.B[0]-s.B[1]))
	s.B[1] += cut * (s.B[0] - s.B[1])
}

// ladder advances the four-stage cascade and returns the compensated input.
// Each stage reads the previous stage's value from before this sample; t1
// and t2 relay those values down the cascade.
func (f *Filter) ladder(x float64) float64 {
	s := &f.state
	p, g := f.p, f.f

	in := x - f.q*s.B[4]

	t1 := s.B[1]
	s.B[1] = (in+s.B[0])*p - s.B[1]*g
	t2 := s.B[2]
	s.B[2] = (s.B[1]+t1)*p - s.B[2]*g
	t1 = s.B[3]
	s.B[3] = (s.B[2]+t2)*p - s.B[3]*g
	s.B[4] = (s.B[3]+t1)*p - s.B[4]*g
	s.B[0] = in

	return in
}
