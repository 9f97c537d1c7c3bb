// Package response measures the magnitude response of the ladder filters.
//
// Analyze drives a cold-start filter with a sine at each of the 210 probe
// frequencies (50 Hz to about 20.9 kHz in quarter-tone steps), takes the
// peak of the second half of the output and reports it in decibels.
// Transfer computes the same curve from the FFT of the impulse response and
// serves as a cross-check for the linear topologies.
package response
