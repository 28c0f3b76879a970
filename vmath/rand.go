package vmath

// FastRand is a xorshift64 generator, deterministic per seed
// Not safe for concurrent use; the frame loop owns it
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; seed 0 is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), or 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
