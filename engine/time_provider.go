package engine

import (
	"sync"
	"time"
)

// MonotonicClock reports milliseconds elapsed since construction using the monotonic clock reading
// Also serves as the real sleeper for blocking note playback
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock whose epoch is now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs returns elapsed milliseconds since the clock epoch
func (c *MonotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// SleepMs blocks the calling goroutine
func (c *MonotonicClock) SleepMs(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// MockClock provides a controllable time source for testing
// SleepMs advances the clock instead of blocking so blocking playback runs instantly
type MockClock struct {
	mu     sync.RWMutex
	nowMs  int64
	slept  int64
	sleeps int
}

// NewMockClock creates a mock clock at the given time
func NewMockClock(startMs int64) *MockClock {
	return &MockClock{nowMs: startMs}
}

// NowMs returns the current mocked time
func (m *MockClock) NowMs() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nowMs
}

// SetMs sets the current time
func (m *MockClock) SetMs(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nowMs = ms
}

// Advance moves the clock forward by ms
func (m *MockClock) Advance(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nowMs += ms
}

// SleepMs advances the clock and records the sleep
func (m *MockClock) SleepMs(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ms > 0 {
		m.nowMs += ms
		m.slept += ms
	}
	m.sleeps++
}

// Slept returns the total slept milliseconds and the number of sleep calls
func (m *MockClock) Slept() (total int64, calls int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept, m.sleeps
}
