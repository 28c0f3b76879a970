package core

// SoundType represents gameplay sound effects
type SoundType int

const (
	SoundKick      SoundType = iota // Inner-side kick
	SoundCollision                  // Passive bounce off a player
	SoundGoal                       // Goal fanfare, blocks until done
	SoundTypeCount
)

func (s SoundType) String() string {
	names := [...]string{"kick", "collision", "goal"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// SoundPlayer fires sound effects
// Kick and collision are fire-and-forget; goal may block the caller
type SoundPlayer interface {
	Play(SoundType)
}
