// Package pitch converts between MIDI-style note numbers and frequencies.
//
// Notes use the equal-tempered scale with note 69 tuned to 440 Hz. Detune
// is expressed in cents and shifts the frequency continuously between
// neighbouring semitones. Labels use MML octave notation, e.g. "O5a".
package pitch
