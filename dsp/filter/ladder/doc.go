// Package ladder provides the four resonant one- and two-pole filter
// topologies used by the response analyzer.
//
// Supported types:
//   - TypeLowPass1 / TypeHighPass1:
//     Two coupled one-pole stages with feedback-driven resonance. The
//     high-pass output is the input minus the first stage.
//   - TypeLowPass2 / TypeHighPass2:
//     Four-stage transposed ladder with a resonance compensation curve.
//     The high-pass output is the compensated input minus the last stage.
//
// Cutoff and resonance are not given in Hz but derived from note numbers by
// Derive, which scales the cutoff relative to a reference pitch the way a
// tracker synthesizer expresses its filter envelope.
//
// All types are linear, stateful and deterministic. A Filter supports
// per-sample and block processing, explicit state inspection via State, and
// Reset for cold-start simulations.
package ladder
