package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/head-soccer/parameter"
)

// oscillator generates an endless sine wave; the envelope bounds its length
type oscillator struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func newOscillator(freq float64, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// adsr applies a four-phase envelope to a stream and ends it after the release
// Decay settles at DecayFloor of the peak; sustain holds that level
type adsr struct {
	streamer beep.Streamer

	attack  int // Samples
	decay   int
	sustain int
	release int
	level   float64

	position int
	stopped  bool
	finished bool
	onDone   func()
}

func newADSR(s beep.Streamer, e Envelope, rate beep.SampleRate, onDone func()) *adsr {
	return &adsr{
		streamer: s,
		attack:   msToSamples(rate, e.Attack),
		decay:    msToSamples(rate, e.Decay),
		sustain:  msToSamples(rate, e.Sustain),
		release:  msToSamples(rate, e.Release),
		level:    e.Level,
		onDone:   onDone,
	}
}

func msToSamples(rate beep.SampleRate, ms int) int {
	if ms <= 0 {
		return 0
	}
	return int(int64(rate) * int64(ms) / 1000)
}

func (a *adsr) total() int {
	return a.attack + a.decay + a.sustain + a.release
}

// gain returns the envelope level at the current position
func (a *adsr) gain() float64 {
	p := a.position
	floor := a.level * parameter.DecayFloor

	if p < a.attack {
		return a.level * float64(p) / float64(a.attack)
	}
	p -= a.attack
	if p < a.decay {
		return a.level - (a.level-floor)*float64(p)/float64(a.decay)
	}
	p -= a.decay
	if p < a.sustain {
		return floor
	}
	p -= a.sustain
	if p < a.release {
		return floor * (1 - float64(p)/float64(a.release))
	}
	return 0
}

func (a *adsr) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := a.total() - a.position
	if a.stopped || remaining <= 0 {
		a.finish()
		return 0, false
	}
	if remaining < len(samples) {
		samples = samples[:remaining]
	}

	n, ok = a.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := a.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		a.position++
	}

	if !ok || a.position >= a.total() {
		a.finish()
	}
	return n, n > 0
}

func (a *adsr) Err() error { return a.streamer.Err() }

// stop cuts the envelope on retrigger; caller holds the speaker lock
func (a *adsr) stop() {
	a.stopped = true
}

func (a *adsr) finish() {
	if a.finished {
		return
	}
	a.finished = true
	if a.onDone != nil {
		a.onDone()
	}
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
