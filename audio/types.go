package audio

import (
	"errors"
)

// Synthesizer produces a tone at a settable frequency
type Synthesizer interface {
	SetFrequency(hz int)
}

// EnvelopeGenerator shapes the synthesizer amplitude over time
// Configure takes effect on the next Trigger; IsIdle is true once the release phase completes
type EnvelopeGenerator interface {
	Configure(e Envelope)
	Trigger()
	IsIdle() bool
}

// Voice is a synthesizer and envelope generator pair driven together
type Voice interface {
	Synthesizer
	EnvelopeGenerator
}

// Muter silences a voice without affecting scheduling
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Sentinel errors
var (
	ErrNoAudioDevice = errors.New("no audio output device")
	ErrUnknownSong   = errors.New("unknown song")
)
