package audio

// SustainAuto derives sustain from the note duration
const SustainAuto = -1

// Envelope holds attack/decay/sustain/release durations in milliseconds and a peak level 0-1
type Envelope struct {
	Attack  int
	Decay   int
	Sustain int
	Release int
	Level   float64
}

// Total returns the full envelope length in milliseconds
func (e Envelope) Total() int {
	return e.Attack + e.Decay + e.Sustain + e.Release
}

// DeriveEnvelope resolves SustainAuto against the note duration
// A note shorter than attack+decay+release collapses to zero sustain
func DeriveEnvelope(totalMs int, e Envelope) Envelope {
	if e.Sustain == SustainAuto {
		e.Sustain = totalMs - (e.Attack + e.Decay + e.Release)
	}
	if e.Sustain < 0 {
		e.Sustain = 0
	}
	return e
}
