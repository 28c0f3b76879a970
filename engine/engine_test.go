package engine

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/physics"
)

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

// recorder logs sounds and hook calls in order
type recorder struct {
	events []string
}

func (r *recorder) Play(st core.SoundType) { r.events = append(r.events, "sound:"+st.String()) }

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()
	t1 := c.NowMs()
	c.SleepMs(10)
	t2 := c.NowMs()
	if t2-t1 < 10 {
		t.Errorf("Expected at least 10ms to elapse, got %d", t2-t1)
	}
	if t1 < 0 {
		t.Errorf("Expected non-negative time, got %d", t1)
	}
}

func TestMockClock(t *testing.T) {
	m := NewMockClock(1000)
	if m.NowMs() != 1000 {
		t.Errorf("Expected initial time 1000, got %d", m.NowMs())
	}

	m.Advance(50)
	if m.NowMs() != 1050 {
		t.Errorf("Expected 1050 after Advance, got %d", m.NowMs())
	}

	m.SleepMs(100)
	m.SleepMs(0)
	if m.NowMs() != 1150 {
		t.Errorf("Expected sleep to advance the clock to 1150, got %d", m.NowMs())
	}
	total, calls := m.Slept()
	if total != 100 || calls != 2 {
		t.Errorf("Expected 100ms over 2 calls, got %d over %d", total, calls)
	}

	m.SetMs(5)
	if m.NowMs() != 5 {
		t.Errorf("Expected SetMs to override time, got %d", m.NowMs())
	}
}

func TestDetectGoalEdges(t *testing.T) {
	tests := []struct {
		name   string
		ballX  int
		want   core.PlayerID
		scored bool
	}{
		{"right edge on left inner post", parameter.PostInnerLeft - parameter.BallWidth, 0, false},
		{"right edge past left inner post", parameter.PostInnerLeft - parameter.BallWidth - 1, core.Player2, true},
		{"left edge on right inner post", parameter.PostInnerRight, 0, false},
		{"left edge past right inner post", parameter.PostInnerRight + 1, core.Player1, true},
		{"mid field", 312, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState()
			s.Ball.X = tt.ballX
			got, ok := DetectGoal(s)
			if ok != tt.scored || got != tt.want {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.want, tt.scored, got, ok)
			}
		})
	}
}

func TestKickoff(t *testing.T) {
	s := NewGameState()
	if s.Ball.Y != parameter.BallGroundY || s.Ball.VY != 0 {
		t.Errorf("Expected grounded ball at start, got %s", spew.Sdump(s.Ball))
	}
	if !s.P1.OnGround || !s.P2.OnGround {
		t.Error("Expected grounded players at start")
	}

	s.Kickoff(false)
	want := physics.Ball{X: 312, Y: 232, VY: 5}
	if s.Ball != want {
		t.Errorf("Expected airborne kickoff ball %+v, got %+v", want, s.Ball)
	}
	if s.P1.X != 50 || s.P2.X != 558 {
		t.Errorf("Expected players at 50 and 558, got %d and %d", s.P1.X, s.P2.X)
	}
	if s.P1.Y != parameter.PlayerGroundY || s.P2.Y != parameter.PlayerGroundY {
		t.Error("Expected players on the ground line")
	}
	if s.P1.OnGround || s.P2.OnGround {
		t.Error("Expected airborne kickoff to clear the grounded flag")
	}
}

func TestStepGoalSequence(t *testing.T) {
	rec := &recorder{}
	g := NewGame(physics.DefaultTuning(), fixedRand(1), rec)
	g.SetGoalHook(func(scorer core.PlayerID, s *GameState) {
		p1, p2 := s.Score()
		rec.events = append(rec.events, "hook:"+scorer.String())
		if p1 != 0 || p2 != 1 {
			t.Errorf("Expected score updated before hook, got %d-%d", p1, p2)
		}
	})

	g.State.Ball = physics.Ball{X: 1, Y: 300}
	scorer, ok := g.Step(1000, Controls{})
	if !ok || scorer != core.Player2 {
		t.Fatalf("Expected player 2 goal, got (%v,%v)", scorer, ok)
	}

	want := []string{"hook:player 2", "sound:goal"}
	if len(rec.events) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("Expected event %d to be %q, got %q", i, want[i], rec.events[i])
		}
	}

	b := g.State.BallState()
	if b.X != parameter.BallStartX || b.Y != parameter.BallAirborneY || b.VY != parameter.BallDropVelocity {
		t.Errorf("Expected airborne kickoff after goal, got %s", spew.Sdump(b))
	}

	// Next frame plays on without another goal
	if _, ok := g.Step(1030, Controls{}); ok {
		t.Error("Expected no goal on the following frame")
	}
	if p1, p2 := g.State.Score(); p1 != 0 || p2 != 1 {
		t.Errorf("Expected score 0-1, got %d-%d", p1, p2)
	}
	if g.Stats().Value("goals.p2") != 1 || g.Stats().Value("goals.p1") != 0 {
		t.Errorf("Expected goal counted, got %s", g.Stats().Summary())
	}

	g.ResetMatch()
	if p1, p2 := g.State.Score(); p1 != 0 || p2 != 0 || g.Stats().Value("goals.p2") != 0 {
		t.Errorf("Expected match reset to clear score and stats, got %d-%d %s", p1, p2, g.Stats().Summary())
	}
}

func TestStepRightGoal(t *testing.T) {
	g := NewGame(physics.DefaultTuning(), nil, nil)
	g.State.Ball = physics.Ball{X: 630, Y: 300}
	// Wall clamp holds the ball at 624, past the right post's inner edge
	scorer, ok := g.Step(0, Controls{})
	if !ok || scorer != core.Player1 {
		t.Fatalf("Expected player 1 goal, got (%v,%v)", scorer, ok)
	}
	if leader, ok := g.State.Leader(); !ok || leader != core.Player1 {
		t.Errorf("Expected player 1 to lead, got (%v,%v)", leader, ok)
	}
}

func TestStepKick(t *testing.T) {
	rec := &recorder{}
	g := NewGame(physics.DefaultTuning(), fixedRand(1), rec)
	g.State.Ball = physics.Ball{X: 60, Y: 416}

	g.Step(500, Controls{P1: PlayerControls{Kick: true}})

	b := g.State.BallState()
	if b.VX != parameter.KickSpeed || b.VY != parameter.KickLift {
		t.Errorf("Expected kick velocity (15,-6), got %s", spew.Sdump(b))
	}
	if !g.State.P1Kicking || g.State.P2Kicking {
		t.Error("Expected kick pose flags to follow input")
	}
	if len(rec.events) != 1 || rec.events[0] != "sound:kick" {
		t.Errorf("Expected single kick sound, got %v", rec.events)
	}
	if got := g.Stats().Summary(); got != "contact.kick=1" {
		t.Errorf("Expected one kick counted, got %q", got)
	}
}

func TestStepControls(t *testing.T) {
	g := NewGame(physics.DefaultTuning(), nil, nil)

	g.Step(0, Controls{P1: PlayerControls{Right: true}, P2: PlayerControls{Left: true}})
	p1, p2 := g.State.Players()
	if p1.X != parameter.Player1StartX+parameter.MoveStep {
		t.Errorf("Expected player 1 to move right, got x=%d", p1.X)
	}
	if p2.X != parameter.Player2StartX-parameter.MoveStep {
		t.Errorf("Expected player 2 to move left, got x=%d", p2.X)
	}

	g.Step(30, Controls{P1: PlayerControls{Jump: true}})
	p1, _ = g.State.Players()
	if p1.OnGround || p1.Y >= parameter.PlayerGroundY {
		t.Fatalf("Expected player 1 airborne after jump, got %+v", p1)
	}

	// Jump input while airborne does not restart the jump
	vy := p1.VY
	g.Step(60, Controls{P1: PlayerControls{Jump: true}})
	p1, _ = g.State.Players()
	if p1.VY != vy+parameter.Gravity {
		t.Errorf("Expected airborne jump to be ignored, vy=%v", p1.VY)
	}

	for i := 0; i < 50; i++ {
		g.Step(int64(90+i*30), Controls{P1: PlayerControls{Left: true}})
	}
	p1, _ = g.State.Players()
	if p1.X != 0 {
		t.Errorf("Expected player 1 clamped at left edge, got x=%d", p1.X)
	}
	if !p1.OnGround {
		t.Error("Expected player 1 to land")
	}
}

func TestResetMatch(t *testing.T) {
	s := NewGameState()
	s.AddGoal(core.Player1)
	s.AddGoal(core.Player2)
	s.AddGoal(core.Player2)
	s.Cooldown.Mark(100)

	if _, ok := s.Leader(); !ok {
		t.Error("Expected a leader at 1-2")
	}

	s.ResetMatch()
	if p1, p2 := s.Score(); p1 != 0 || p2 != 0 {
		t.Errorf("Expected scores cleared, got %d-%d", p1, p2)
	}
	if _, armed := s.Cooldown.Last(); armed {
		t.Error("Expected cooldown cleared")
	}
	if _, ok := s.Leader(); ok {
		t.Error("Expected draw after reset")
	}
}

func TestMatchTimer(t *testing.T) {
	m := NewMatchTimer(1000, 10)
	tests := []struct {
		now     int64
		clock   string
		expired bool
	}{
		{1000, "00:10", false},
		{1999, "00:10", false},
		{2000, "00:09", false},
		{10999, "00:01", false},
		{11000, "00:00", true},
		{50000, "00:00", true},
		{500, "00:10", false},
	}
	for _, tt := range tests {
		if got := m.Clock(tt.now); got != tt.clock {
			t.Errorf("At %d: expected clock %s, got %s", tt.now, tt.clock, got)
		}
		if got := m.Expired(tt.now); got != tt.expired {
			t.Errorf("At %d: expected expired=%v, got %v", tt.now, tt.expired, got)
		}
	}

	long := NewMatchTimer(0, 90)
	if got := long.Clock(0); got != "01:30" {
		t.Errorf("Expected 01:30, got %s", got)
	}
}
