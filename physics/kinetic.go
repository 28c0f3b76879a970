package physics

import (
	"math"

	"github.com/lixenwraith/head-soccer/parameter"
)

// StepPlayer advances a player by one frame
// Gravity applies even when grounded and the ground clamp zeroes it again
// Velocity is truncated toward zero before it moves the player
func StepPlayer(p *Player, t Tuning) {
	p.VY += t.Gravity
	p.Y += int(p.VY)

	if p.Y >= parameter.PlayerGroundY {
		p.Y = parameter.PlayerGroundY
		p.VY = 0
		p.OnGround = true
	}
}

// StepBall advances the ball by one frame: gravity, integration, ground bounce, wall bounce, friction
// Position and velocity are summed in float and the sum truncated toward zero
func StepBall(b *Ball, t Tuning) {
	b.VY += t.Gravity
	b.X = int(float64(b.X) + b.VX)
	b.Y = int(float64(b.Y) + b.VY)

	if b.Y >= parameter.BallGroundY {
		b.Y = parameter.BallGroundY
		b.VY *= -t.BounceDamping
		if math.Abs(b.VY) < t.BounceEpsilon {
			b.VY = 0
		}
	}

	if b.X <= 0 {
		b.X = 0
		b.VX *= -t.BounceDamping
	} else if b.X+parameter.BallWidth >= parameter.ScreenWidth {
		b.X = parameter.ScreenWidth - parameter.BallWidth
		b.VX *= -t.BounceDamping
	}

	b.VX *= t.Friction
}
