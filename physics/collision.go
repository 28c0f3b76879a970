package physics

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/vmath"
)

// Contact reports what a resolve call did
type Contact uint8

const (
	ContactNone   Contact = iota // No overlap
	ContactTouch                 // Overlap corrected, no event fired
	ContactKick                  // Directional kick impulse
	ContactBounce                // Passive bounce impulse
)

func (c Contact) String() string {
	names := [...]string{"none", "touch", "kick", "bounce"}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Cooldown is the shared last-collision timestamp gating passive bounces
// The zero value has never fired and is ready
type Cooldown struct {
	lastMs int64
	armed  bool
}

// Ready reports whether more than windowMs has passed since the last bounce
func (c *Cooldown) Ready(nowMs, windowMs int64) bool {
	return !c.armed || nowMs-c.lastMs > windowMs
}

// Mark records a bounce at nowMs
func (c *Cooldown) Mark(nowMs int64) {
	c.lastMs = nowMs
	c.armed = true
}

// Last returns the last bounce time and whether one has happened
func (c *Cooldown) Last() (int64, bool) {
	return c.lastMs, c.armed
}

// Resolver detects player-ball contact and applies kick or bounce impulses
type Resolver struct {
	tuning Tuning
	rng    core.Rand
	sounds core.SoundPlayer
}

// NewResolver creates a resolver; nil rng disables kick jitter, nil sounds is silent
func NewResolver(t Tuning, rng core.Rand, sounds core.SoundPlayer) *Resolver {
	return &Resolver{
		tuning: t,
		rng:    rng,
		sounds: sounds,
	}
}

// Resolve handles contact between one player and the ball, called once per player per frame
// Priority: kick (input held and ball on the inner side, never gated),
// then bounce (cooldown elapsed), otherwise push-out only
func (r *Resolver) Resolve(id core.PlayerID, p Player, b *Ball, kicking bool, nowMs int64, cd *Cooldown) Contact {
	pc := p.Circle()
	bc := b.Circle()
	if !vmath.Overlaps(pc, bc) {
		return ContactNone
	}

	// Push the ball fully out along the contact normal
	nx, ny, depth := vmath.Separation(pc, bc)
	cx := bc.X + nx*depth
	cy := bc.Y + ny*depth
	b.X = int(cx - parameter.BallWidth/2.0)
	b.Y = int(cy - parameter.BallHeight/2.0)

	dir := 1.0
	if nx < 0 {
		dir = -1.0
	}

	// Inner side uses the pre-correction offset; a ball behind the player's back cannot be kicked
	dx := bc.X - pc.X
	inner := (id == core.Player1 && dx >= 0) || (id == core.Player2 && dx <= 0)

	if kicking && inner {
		b.VX = r.tuning.KickSpeed*dir + float64(r.jitter())
		b.VY = r.tuning.KickLift
		r.play(core.SoundKick)
		return ContactKick
	}

	if !cd.Ready(nowMs, r.tuning.CooldownMs) {
		return ContactTouch
	}

	if b.Y < p.Y+parameter.HeadZone {
		b.VX = parameter.HeadBounceSpeed * dir
		b.VY = parameter.HeadBounceLift
	} else {
		b.VX = parameter.BodyBounceSpeed * dir
		b.VY = parameter.BodyBounceLift
	}
	r.play(core.SoundCollision)
	cd.Mark(nowMs)
	return ContactBounce
}

// jitter returns an integer in [-KickJitter, KickJitter]
func (r *Resolver) jitter() int {
	if r.rng == nil {
		return 0
	}
	return r.rng.Intn(2*parameter.KickJitter+1) - parameter.KickJitter
}

func (r *Resolver) play(st core.SoundType) {
	if r.sounds != nil {
		r.sounds.Play(st)
	}
}
