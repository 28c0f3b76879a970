package core

// PlayerID identifies one of the two players
// Player1 defends the left goal, Player2 the right goal
type PlayerID uint8

const (
	Player1 PlayerID = iota + 1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "unknown"
	}
}

// Opponent returns the other player
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}
