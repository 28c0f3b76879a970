package engine

import "fmt"

// MatchTimer tracks the fixed-length match in whole seconds
type MatchTimer struct {
	startMs     int64
	durationSec int
}

// NewMatchTimer starts a match of durationSec at startMs
func NewMatchTimer(startMs int64, durationSec int) MatchTimer {
	return MatchTimer{startMs: startMs, durationSec: durationSec}
}

// Elapsed returns whole seconds since the start
func (m MatchTimer) Elapsed(nowMs int64) int {
	if nowMs <= m.startMs {
		return 0
	}
	return int((nowMs - m.startMs) / 1000)
}

// Remaining returns whole seconds left, never negative
func (m MatchTimer) Remaining(nowMs int64) int {
	r := m.durationSec - m.Elapsed(nowMs)
	if r < 0 {
		return 0
	}
	return r
}

// Expired reports whether the match is over
func (m MatchTimer) Expired(nowMs int64) bool {
	return m.Elapsed(nowMs) >= m.durationSec
}

// Clock formats the remaining time as MM:SS
func (m MatchTimer) Clock(nowMs int64) string {
	r := m.Remaining(nowMs)
	return fmt.Sprintf("%02d:%02d", r/60, r%60)
}
