package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// BeepVoice is a single monophonic voice on the speaker: a sine oscillator shaped by one ADSR envelope
// A new trigger cuts the previous envelope, as a single hardware generator would
type BeepVoice struct {
	mu sync.Mutex

	config *AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume

	freq    int
	env     Envelope
	current *adsr

	initialized bool
	generation  atomic.Uint64
	idle        atomic.Bool
	muted       atomic.Bool
}

// NewBeepVoice creates an uninitialized voice; operations are safe no-ops until Initialize succeeds
func NewBeepVoice(cfg *AudioConfig) *BeepVoice {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	v := &BeepVoice{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		env:    NoteShape,
	}
	v.master = newVolume(v.mixer, cfg.MasterVolume)
	v.idle.Store(true)
	v.muted.Store(!cfg.Enabled)
	return v
}

// Initialize opens the speaker and starts streaming the mixer
func (v *BeepVoice) Initialize() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initialized {
		return nil
	}

	bufferSize := v.rate.N(time.Duration(v.config.BufferMs) * time.Millisecond)
	if err := speaker.Init(v.rate, bufferSize); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	v.applyMute(v.muted.Load())
	speaker.Play(v.master)
	v.initialized = true
	return nil
}

// Close stops all sound
func (v *BeepVoice) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.initialized {
		return
	}

	speaker.Lock()
	if v.current != nil {
		v.current.stop()
		v.current = nil
	}
	v.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	v.idle.Store(true)
	v.initialized = false
}

// SetFrequency sets the tone for the next trigger
func (v *BeepVoice) SetFrequency(hz int) {
	v.mu.Lock()
	v.freq = hz
	v.mu.Unlock()
}

// Configure sets the envelope for the next trigger
func (v *BeepVoice) Configure(e Envelope) {
	v.mu.Lock()
	v.env = e
	v.mu.Unlock()
}

// Trigger starts the attack phase; without a speaker the voice stays idle
func (v *BeepVoice) Trigger() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.initialized || v.freq <= 0 || v.env.Total() <= 0 {
		return
	}

	gen := v.generation.Add(1)
	env := newADSR(newOscillator(float64(v.freq), v.rate), v.env, v.rate, func() {
		if v.generation.Load() == gen {
			v.idle.Store(true)
		}
	})

	v.idle.Store(false)
	speaker.Lock()
	if v.current != nil {
		v.current.stop()
	}
	v.current = env
	v.mixer.Add(env)
	speaker.Unlock()
}

// IsIdle reports whether the last envelope finished its release
func (v *BeepVoice) IsIdle() bool {
	return v.idle.Load()
}

// SetMuted silences the master output; envelopes keep their timing
func (v *BeepVoice) SetMuted(muted bool) {
	v.muted.Store(muted)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.initialized {
		v.applyMute(muted)
	}
}

// Muted reports the mute state
func (v *BeepVoice) Muted() bool {
	return v.muted.Load()
}

// applyMute toggles the master volume; caller holds mu
func (v *BeepVoice) applyMute(muted bool) {
	speaker.Lock()
	v.master.Silent = muted || v.config.MasterVolume <= 0
	speaker.Unlock()
}

// NullVoice is the silent fallback when no audio device is available
// Scheduling still runs; the envelope is always idle
type NullVoice struct {
	muted atomic.Bool
}

func (n *NullVoice) SetFrequency(int)   {}
func (n *NullVoice) Configure(Envelope) {}
func (n *NullVoice) Trigger()           {}
func (n *NullVoice) IsIdle() bool       { return true }
func (n *NullVoice) SetMuted(m bool)    { n.muted.Store(m) }
func (n *NullVoice) Muted() bool        { return n.muted.Load() }

// OpenVoice returns a speaker-backed voice, or the null voice when audio is disabled or unavailable
// The error is informational; the returned voice is always usable
func OpenVoice(cfg *AudioConfig) (Voice, func(), error) {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if !cfg.Enabled {
		return &NullVoice{}, func() {}, nil
	}

	v := NewBeepVoice(cfg)
	if err := v.Initialize(); err != nil {
		log.Printf("audio: %v, running silent", err)
		return &NullVoice{}, func() {}, err
	}
	return v, v.Close, nil
}
