package engine

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/physics"
)

// GameState is the single aggregate owned by the frame loop
// Mutated only from the frame goroutine, read by the renderer between frames
type GameState struct {
	P1   physics.Player
	P2   physics.Player
	Ball physics.Ball

	// Kick inputs of the current frame, kept for the kick pose
	P1Kicking bool
	P2Kicking bool

	// Cooldown is shared by both players
	Cooldown physics.Cooldown

	p1Score int
	p2Score int
}

// NewGameState returns a state at kickoff with the ball resting on the ground
func NewGameState() *GameState {
	s := &GameState{}
	s.Kickoff(true)
	return s
}

// Kickoff resets actor positions to the kickoff layout
// A grounded ball rests on the ground line; otherwise it drops from mid-screen
// Players keep the ball's grounded flag so the first frame settles them
func (s *GameState) Kickoff(ballOnGround bool) {
	s.Ball = physics.Ball{X: parameter.BallStartX}
	if ballOnGround {
		s.Ball.Y = parameter.BallGroundY
	} else {
		s.Ball.Y = parameter.BallAirborneY
		s.Ball.VY = parameter.BallDropVelocity
	}

	s.P1 = physics.Player{X: parameter.Player1StartX, Y: parameter.PlayerGroundY, OnGround: ballOnGround}
	s.P2 = physics.Player{X: parameter.Player2StartX, Y: parameter.PlayerGroundY, OnGround: ballOnGround}
	s.P1Kicking = false
	s.P2Kicking = false
}

// ResetMatch clears scores and the cooldown and restores the grounded kickoff
func (s *GameState) ResetMatch() {
	s.p1Score = 0
	s.p2Score = 0
	s.Cooldown = physics.Cooldown{}
	s.Kickoff(true)
}

// AddGoal credits one goal to the scorer
func (s *GameState) AddGoal(scorer core.PlayerID) {
	switch scorer {
	case core.Player1:
		s.p1Score++
	case core.Player2:
		s.p2Score++
	}
}

// Score returns both scores
func (s *GameState) Score() (p1, p2 int) {
	return s.p1Score, s.p2Score
}

// Players returns copies of both players
func (s *GameState) Players() (p1, p2 physics.Player) {
	return s.P1, s.P2
}

// BallState returns a copy of the ball
func (s *GameState) BallState() physics.Ball {
	return s.Ball
}

// Leader returns the player ahead on score, false on a draw
func (s *GameState) Leader() (core.PlayerID, bool) {
	switch {
	case s.p1Score > s.p2Score:
		return core.Player1, true
	case s.p2Score > s.p1Score:
		return core.Player2, true
	default:
		return 0, false
	}
}
