package core

// Fixed simulation geometry shared by every response computation. Responses
// are always measured at this rate and length; neither is configurable.
const (
	// SampleRate is the simulation sample rate in Hz.
	SampleRate = 44100.0

	// ProbeLength is the number of samples simulated per probe frequency.
	ProbeLength = 5000

	// SteadyStateStart is the first sample of the measured region. Everything
	// before it is treated as ring-up transient and ignored.
	SteadyStateStart = ProbeLength / 2
)
