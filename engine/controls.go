package engine

import (
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/physics"
)

// PlayerControls is one player's logical input for a frame
type PlayerControls struct {
	Left  bool
	Right bool
	Jump  bool
	Kick  bool
}

// Controls is the logical input of both players for a frame
type Controls struct {
	P1 PlayerControls
	P2 PlayerControls
}

// applyControls moves a player horizontally, starts a jump when grounded, and clamps to the screen
func applyControls(p *physics.Player, c PlayerControls) {
	if c.Left {
		p.X -= parameter.MoveStep
	}
	if c.Right {
		p.X += parameter.MoveStep
	}
	if c.Jump && p.OnGround {
		p.VY = parameter.JumpVelocity
		p.OnGround = false
	}

	if p.X < 0 {
		p.X = 0
	} else if p.X > parameter.ScreenWidth-parameter.PlayerWidth {
		p.X = parameter.ScreenWidth - parameter.PlayerWidth
	}
}
