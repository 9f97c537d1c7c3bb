package pitch

import (
	"math"
	"strconv"
)

// Valid input ranges. Frequency and Label accept any integer; callers that
// take user input check these bounds first.
const (
	MinNote   = 0
	MaxNote   = 127
	MinDetune = -99
	MaxDetune = 99
)

const (
	referenceNote = 69
	referenceHz   = 440.0
	centsPerNote  = 100
	centsPerOct   = 1200
)

var pitchClasses = [12]string{"c", "c+", "d", "d+", "e", "f", "f+", "g", "g+", "a", "a+", "b"}

// Frequency returns the frequency in Hz of note shifted by detune cents.
func Frequency(note, detune int) float64 {
	cents := (note-referenceNote)*centsPerNote + detune
	return referenceHz * math.Pow(2, float64(cents)/centsPerOct)
}

// Label returns the MML octave/pitch-class tag of note, e.g. 69 -> "O5a".
// Label is intended for display and expects a note in [MinNote, MaxNote].
func Label(note int) string {
	return "O" + strconv.Itoa(note/12) + pitchClasses[note%12]
}

// ValidNote reports whether note lies in [MinNote, MaxNote].
func ValidNote(note int) bool {
	return note >= MinNote && note <= MaxNote
}

// ValidDetune reports whether detune lies in [MinDetune, MaxDetune].
func ValidDetune(detune int) bool {
	return detune >= MinDetune && detune <= MaxDetune
}
