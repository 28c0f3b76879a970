package core

// Clock reports monotonic time in milliseconds
type Clock interface {
	NowMs() int64
}

// Sleeper blocks the caller for the given number of milliseconds
type Sleeper interface {
	SleepMs(ms int64)
}

// Rand is an injectable randomness source (kick jitter)
type Rand interface {
	Intn(n int) int
}
