package audio

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
)

// NoteShape is the default blocking note envelope, sustain derived from duration
var NoteShape = Envelope{
	Attack:  parameter.NoteAttack,
	Decay:   parameter.NoteDecay,
	Sustain: SustainAuto,
	Release: parameter.NoteRelease,
	Level:   parameter.NoteLevel,
}

// ImpactShape is the percussive envelope used by PlayImpact
var ImpactShape = Envelope{
	Attack:  parameter.ImpactAttack,
	Decay:   parameter.ImpactDecay,
	Sustain: SustainAuto,
	Release: parameter.ImpactRelease,
	Level:   parameter.ImpactLevel,
}

// Player is the run-to-completion half of the sequencer
// Every Play call blocks the caller; use outside live gameplay only
type Player struct {
	synth   Synthesizer
	env     EnvelopeGenerator
	sleeper core.Sleeper
}

// NewPlayer creates a blocking note player over a synthesizer/envelope pair
func NewPlayer(synth Synthesizer, env EnvelopeGenerator, sleeper core.Sleeper) *Player {
	return &Player{
		synth:   synth,
		env:     env,
		sleeper: sleeper,
	}
}

// NewVoicePlayer creates a player over a combined voice
func NewVoicePlayer(v Voice, sleeper core.Sleeper) *Player {
	return NewPlayer(v, v, sleeper)
}

// Fire sets the frequency and starts the envelope without waiting
func (p *Player) Fire(freq int, e Envelope) {
	p.synth.SetFrequency(freq)
	p.env.Configure(e)
	p.env.Trigger()
}

// PlayNote plays a note with the default shape and sleeps for its duration
func (p *Player) PlayNote(freq, durationMs int) {
	p.PlayShaped(freq, durationMs, NoteShape)
}

// PlayShaped plays a note with an explicit envelope and sleeps for its duration
// Rest notes only sleep
func (p *Player) PlayShaped(freq, durationMs int, shape Envelope) {
	if freq != core.Rest {
		p.Fire(freq, DeriveEnvelope(durationMs, shape))
	}
	p.sleeper.SleepMs(int64(durationMs))
}

// PlayImpact plays a percussive note and waits on the envelope idle signal instead of the duration
// No timeout: the wait ends when the generator reports idle
func (p *Player) PlayImpact(freq, durationMs int) {
	if freq == core.Rest {
		p.sleeper.SleepMs(int64(durationMs))
		return
	}
	p.Fire(freq, DeriveEnvelope(durationMs, ImpactShape))
	for !p.env.IsIdle() {
		p.sleeper.SleepMs(parameter.ImpactPollMs)
	}
}

// PlaySong plays each note in order to completion
// onNote, when set, runs before each note starts
func (p *Player) PlaySong(song core.Song, onNote func(i int)) {
	for i, n := range song {
		if onNote != nil {
			onNote(i)
		}
		p.PlayNote(n.Freq, n.DurationMs)
	}
}
