package audio

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
)

// Effect presets layered on the shared voice
var (
	collisionShape = Envelope{
		Attack:  parameter.CollisionAttack,
		Decay:   parameter.CollisionDecay,
		Sustain: 0,
		Release: parameter.CollisionRelease,
		Level:   parameter.EffectLevel,
	}
	kickShape = Envelope{
		Attack:  parameter.KickAttack,
		Decay:   parameter.KickDecay,
		Sustain: 0,
		Release: parameter.KickRelease,
		Level:   parameter.EffectLevel,
	}
	beepShort = Envelope{
		Attack:  parameter.BeepShortAttack,
		Decay:   parameter.BeepShortDecay,
		Sustain: parameter.BeepShortSustain,
		Release: parameter.BeepShortRelease,
		Level:   parameter.NoteLevel,
	}
	beepLong = Envelope{
		Attack:  parameter.BeepLongAttack,
		Decay:   parameter.BeepLongDecay,
		Sustain: parameter.BeepLongSustain,
		Release: parameter.BeepLongRelease,
		Level:   parameter.NoteLevel,
	}
)

// GoalTune is the blocking goal fanfare
var GoalTune = core.Song{
	{Freq: core.NoteC5, DurationMs: core.Eighth},
	{Freq: core.NoteE5, DurationMs: core.Eighth},
	{Freq: core.NoteG5, DurationMs: core.Quarter},
}

// Effects maps gameplay sound types onto envelope/frequency presets
type Effects struct {
	player *Player
}

// NewEffects creates the effect bank over a blocking player
func NewEffects(p *Player) *Effects {
	return &Effects{player: p}
}

// Play fires a sound effect; kick and collision return immediately, goal blocks for the fanfare
func (e *Effects) Play(st core.SoundType) {
	switch st {
	case core.SoundCollision:
		e.player.Fire(core.NoteC4, collisionShape)
	case core.SoundKick:
		e.player.Fire(core.NoteC5, kickShape)
	case core.SoundGoal:
		e.player.PlaySong(GoalTune, nil)
	}
}

// Countdown plays a blocking beep: short for steps 0-2, long for the start signal
func (e *Effects) Countdown(n int) {
	if n < 3 {
		e.player.PlayShaped(core.NoteC5, parameter.BeepShortMs, beepShort)
		return
	}
	e.player.PlayShaped(core.NoteG5, parameter.BeepLongMs, beepLong)
}
