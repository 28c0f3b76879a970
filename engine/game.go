package engine

import (
	"log"

	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/physics"
	"github.com/lixenwraith/head-soccer/status"
)

// GoalHook is invoked after the score changes and before the fanfare plays
type GoalHook func(scorer core.PlayerID, s *GameState)

// Game advances the simulation one frame at a time
type Game struct {
	State *GameState

	tuning   physics.Tuning
	resolver *physics.Resolver
	sounds   core.SoundPlayer
	onGoal   GoalHook
	stats    *status.Counters
}

// NewGame creates a game at the grounded kickoff
// sounds may be nil for a silent simulation
func NewGame(t physics.Tuning, rng core.Rand, sounds core.SoundPlayer) *Game {
	return &Game{
		State:    NewGameState(),
		tuning:   t,
		resolver: physics.NewResolver(t, rng, sounds),
		sounds:   sounds,
		stats:    status.NewCounters(),
	}
}

// Stats returns the per-match contact and goal counters
func (g *Game) Stats() *status.Counters {
	return g.stats
}

// ResetMatch clears scores and counters and restores the grounded kickoff
func (g *Game) ResetMatch() {
	g.State.ResetMatch()
	g.stats.Reset()
}

// SetGoalHook registers the callback fired on each goal
func (g *Game) SetGoalHook(h GoalHook) {
	g.onGoal = h
}

// Step runs one frame: controls, integration, contact for player 1 then player 2, goal detection
// Returns the scorer when a goal was processed this frame
func (g *Game) Step(nowMs int64, ctl Controls) (core.PlayerID, bool) {
	s := g.State

	applyControls(&s.P1, ctl.P1)
	applyControls(&s.P2, ctl.P2)
	s.P1Kicking = ctl.P1.Kick
	s.P2Kicking = ctl.P2.Kick

	physics.StepPlayer(&s.P1, g.tuning)
	physics.StepPlayer(&s.P2, g.tuning)
	physics.StepBall(&s.Ball, g.tuning)

	g.record(g.resolver.Resolve(core.Player1, s.P1, &s.Ball, ctl.P1.Kick, nowMs, &s.Cooldown))
	g.record(g.resolver.Resolve(core.Player2, s.P2, &s.Ball, ctl.P2.Kick, nowMs, &s.Cooldown))

	return g.detectGoals()
}

// detectGoals handles at most one goal per frame: score, hook, blocking fanfare, airborne kickoff
func (g *Game) detectGoals() (core.PlayerID, bool) {
	scorer, ok := DetectGoal(g.State)
	if !ok {
		return 0, false
	}

	g.State.AddGoal(scorer)
	g.stats.Inc(goalKey(scorer))
	p1, p2 := g.State.Score()
	log.Printf("goal: %s scores (%d-%d)", scorer, p1, p2)

	if g.onGoal != nil {
		g.onGoal(scorer, g.State)
	}
	if g.sounds != nil {
		g.sounds.Play(core.SoundGoal)
	}

	g.State.Kickoff(false)
	return scorer, true
}

// record counts contacts that fired an impulse
func (g *Game) record(c physics.Contact) {
	switch c {
	case physics.ContactKick, physics.ContactBounce:
		g.stats.Inc("contact." + c.String())
	}
}

func goalKey(scorer core.PlayerID) string {
	if scorer == core.Player1 {
		return "goals.p1"
	}
	return "goals.p2"
}
