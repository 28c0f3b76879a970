package engine

import (
	"github.com/lixenwraith/head-soccer/core"
	"github.com/lixenwraith/head-soccer/parameter"
)

// DetectGoal reports which player scored, if any
// The ball must be fully past a post's inner edge; touching the edge does not count
func DetectGoal(s *GameState) (core.PlayerID, bool) {
	if s.Ball.Right() < parameter.PostInnerLeft {
		return core.Player2, true
	}
	if s.Ball.Left() > parameter.PostInnerRight {
		return core.Player1, true
	}
	return 0, false
}
