package audio

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
)

// SequencerState is the observable phase of the song player
type SequencerState int

const (
	StateStopped     SequencerState = iota // No song bound
	StateNoteWaiting                       // Bound, next tick triggers the current note
	StateNoteActive                        // Current note sounding, waiting for its duration
	StateFinished                          // Non-looping song ran past its last note
)

func (s SequencerState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateNoteWaiting:
		return "note-waiting"
	case StateNoteActive:
		return "note-active"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Sequencer is the step-once half of the sequencer: a tick-driven song player that never sleeps
// One song at a time; Start replaces all state
type Sequencer struct {
	clock core.Clock
	synth Synthesizer
	env   EnvelopeGenerator

	song    core.Song
	index   int
	playing bool
	done    bool
	loop    bool
	startMs int64
}

// NewSequencer creates an idle sequencer
func NewSequencer(clock core.Clock, synth Synthesizer, env EnvelopeGenerator) *Sequencer {
	return &Sequencer{
		clock: clock,
		synth: synth,
		env:   env,
	}
}

// NewVoiceSequencer creates a sequencer over a combined voice
func NewVoiceSequencer(clock core.Clock, v Voice) *Sequencer {
	return NewSequencer(clock, v, v)
}

// Start binds a song and resets playback; the next Tick triggers the first note
func (s *Sequencer) Start(song core.Song, loop bool) {
	s.song = song
	s.index = 0
	s.playing = false
	s.done = false
	s.loop = loop
	s.startMs = 0
}

// Stop unbinds the current song; the sounding envelope tail is left to decay
func (s *Sequencer) Stop() {
	s.song = nil
	s.index = 0
	s.playing = false
	s.done = false
	s.loop = false
}

// Tick advances the song against the clock; safe no-op when unbound or finished
// An expired note hands over to the next note within the same tick
func (s *Sequencer) Tick() {
	if s.done || len(s.song) == 0 {
		return
	}

	now := s.clock.NowMs()

	if s.playing {
		if now-s.startMs < int64(s.song[s.index].DurationMs) {
			return
		}
		s.index++
		s.playing = false
		if s.index >= len(s.song) {
			if !s.loop {
				s.done = true
				return
			}
			s.index = 0
		}
	}

	s.trigger(now)
}

// trigger starts the current note; rests are silent but still timed
func (s *Sequencer) trigger(now int64) {
	n := s.song[s.index]
	if !n.IsRest() {
		s.synth.SetFrequency(n.Freq)
		s.env.Configure(songEnvelope(n.DurationMs))
		s.env.Trigger()
	}
	s.startMs = now
	s.playing = true
}

// songEnvelope trims the sustain so consecutive notes stay articulated, never below SongSustainMin
func songEnvelope(durationMs int) Envelope {
	return Envelope{
		Attack:  parameter.SongAttack,
		Decay:   parameter.SongDecay,
		Sustain: max(durationMs-parameter.SongSustainTrim, parameter.SongSustainMin),
		Release: parameter.SongRelease,
		Level:   parameter.SongLevel,
	}
}

// IsDone reports whether a non-looping song has finished
func (s *Sequencer) IsDone() bool {
	return s.done
}

// State returns the current phase
func (s *Sequencer) State() SequencerState {
	switch {
	case s.done:
		return StateFinished
	case len(s.song) == 0:
		return StateStopped
	case s.playing:
		return StateNoteActive
	default:
		return StateNoteWaiting
	}
}

// Index returns the position of the current note
func (s *Sequencer) Index() int {
	return s.index
}
