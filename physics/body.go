package physics

import (
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/vmath"
)

// Player is a square actor; vertical motion is integrated here, horizontal motion comes from input
type Player struct {
	X, Y     int
	VY       float64
	OnGround bool
}

// Ball is integrated on both axes
type Ball struct {
	X, Y   int
	VX, VY float64
}

// Circle returns the contact circle, shrunk toward body width
func (p Player) Circle() vmath.Circle {
	return vmath.CircleFromBox(p.X, p.Y, parameter.PlayerWidth, parameter.PlayerHeight, parameter.PlayerRadiusScale)
}

// Circle returns the contact circle inscribed in the ball sprite
func (b Ball) Circle() vmath.Circle {
	return vmath.CircleFromBox(b.X, b.Y, parameter.BallWidth, parameter.BallHeight, 1)
}

// Left and Right return the ball's horizontal sprite edges
func (b Ball) Left() int  { return b.X }
func (b Ball) Right() int { return b.X + parameter.BallWidth }
