package response

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/dsp/pitch"
)

// ErrInvalidParams is matched by every validation failure.
var ErrInvalidParams = errors.New("response: invalid parameters")

// Field names used in FieldError.
const (
	FieldType      = "filter type"
	FieldNote      = "note number"
	FieldDetune    = "detune"
	FieldCutoff    = "cut-off frequency"
	FieldResonance = "resonance"
)

// FieldError reports one rejected input field together with its raw value.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s '%s'", e.Field, e.Value)
}

// Is makes every FieldError match ErrInvalidParams.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidParams
}

// FieldErrors flattens err into the field errors it carries, in the order
// they were reported.
func FieldErrors(err error) []*FieldError {
	switch e := err.(type) {
	case nil:
		return nil
	case *FieldError:
		return []*FieldError{e}
	case interface{ Unwrap() []error }:
		var out []*FieldError
		for _, inner := range e.Unwrap() {
			out = append(out, FieldErrors(inner)...)
		}

		return out
	case interface{ Unwrap() error }:
		return FieldErrors(e.Unwrap())
	default:
		return nil
	}
}

// Params is the complete input of one response computation.
type Params struct {
	Type       ladder.Type `json:"type"`
	Note       int         `json:"note"`
	Detune     int         `json:"detune"`
	CutoffNote int         `json:"cutoff_note"`
	Resonance  int         `json:"resonance"`
}

// ParseParams parses and validates the textual form of Params, as typed into
// a form or passed on a command line. An empty detune means 0. Every invalid
// field is reported; the returned error joins one FieldError per field.
func ParseParams(typ, note, detune, cutoff, resonance string) (Params, error) {
	var (
		p    Params
		errs []error
	)

	t, err := ladder.ParseType(typ)
	if err != nil {
		errs = append(errs, &FieldError{Field: FieldType, Value: typ})
	}

	p.Type = t

	parse := func(field, raw string, valid func(int) bool, dst *int) {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || !valid(v) {
			errs = append(errs, &FieldError{Field: field, Value: raw})
			return
		}

		*dst = v
	}

	parse(FieldNote, note, pitch.ValidNote, &p.Note)

	if strings.TrimSpace(detune) != "" {
		parse(FieldDetune, detune, pitch.ValidDetune, &p.Detune)
	}

	parse(FieldCutoff, cutoff, pitch.ValidNote, &p.CutoffNote)
	parse(FieldResonance, resonance, validResonance, &p.Resonance)

	if len(errs) > 0 {
		return Params{}, errors.Join(errs...)
	}

	return p, nil
}

// Validate checks every field of p and reports all failures at once.
func (p Params) Validate() error {
	var errs []error

	if !p.Type.Valid() {
		errs = append(errs, &FieldError{Field: FieldType, Value: strconv.Itoa(int(p.Type))})
	}

	check := func(field string, v int, valid func(int) bool) {
		if !valid(v) {
			errs = append(errs, &FieldError{Field: field, Value: strconv.Itoa(v)})
		}
	}

	check(FieldNote, p.Note, pitch.ValidNote)
	check(FieldDetune, p.Detune, pitch.ValidDetune)
	check(FieldCutoff, p.CutoffNote, pitch.ValidNote)
	check(FieldResonance, p.Resonance, validResonance)

	return errors.Join(errs...)
}

// Coefficients derives the filter coefficients for p.
func (p Params) Coefficients() ladder.Coefficients {
	return ladder.Derive(p.Note, p.Detune, p.CutoffNote, p.Resonance)
}

// Label formats p as a one-line title, e.g. "@F2,0,80,127 O5a".
func (p Params) Label() string {
	return "@F" + p.Type.Code() + ",0," + strconv.Itoa(p.CutoffNote) + "," +
		strconv.Itoa(p.Resonance) + " " + pitch.Label(p.Note)
}

func validResonance(r int) bool {
	return r >= 0 && r <= ladder.MaxResonance
}
