package render

// SpriteID names a movable sprite
type SpriteID uint8

const (
	SpritePlayer1 SpriteID = iota
	SpritePlayer2
	SpriteBall
	SpriteCount
)

func (id SpriteID) String() string {
	switch id {
	case SpritePlayer1:
		return "player1"
	case SpritePlayer2:
		return "player2"
	case SpriteBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Pose selects a sprite frame
type Pose uint8

const (
	PoseStand Pose = iota
	PoseKick
)

// SpriteSink positions sprites by their top-left pixel
type SpriteSink interface {
	MoveSprite(id SpriteID, x, y int)
}

// Glyph frames, one string per cell row at the reference grid scale
var (
	playerStand = []string{"(oo)", "/||\\"}
	player1Kick = []string{"(oo)", "/|=>"}
	player2Kick = []string{"(oo)", "<=|\\"}
	ballFrame   = []string{"()"}
)

// frame returns the glyph rows for a sprite in a pose
func frame(id SpriteID, pose Pose) []string {
	switch id {
	case SpriteBall:
		return ballFrame
	case SpritePlayer1:
		if pose == PoseKick {
			return player1Kick
		}
	case SpritePlayer2:
		if pose == PoseKick {
			return player2Kick
		}
	}
	return playerStand
}

// sprite is the last known placement of one sprite
type sprite struct {
	x, y    int
	pose    Pose
	visible bool
}
