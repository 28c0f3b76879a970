package vmath

import (
	"math"
	"testing"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for equal seeds, diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be remapped to a non-stuck state")
	}
}

func TestFastRandIntnRange(t *testing.T) {
	r := NewFastRand(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(3)
		if v < 0 || v >= 3 {
			t.Fatalf("Expected Intn(3) in [0,3), got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all three values over 1000 draws, saw %v", seen)
	}
	if r.Intn(0) != 0 || r.Intn(-5) != 0 {
		t.Error("Expected Intn of non-positive n to return 0")
	}
}

func TestCircleFromBox(t *testing.T) {
	c := CircleFromBox(50, 408, 32, 32, 0.8)
	if c.X != 66 || c.Y != 424 {
		t.Errorf("Expected center (66,424), got (%v,%v)", c.X, c.Y)
	}
	if math.Abs(c.R-12.8) > 1e-9 {
		t.Errorf("Expected radius 12.8, got %v", c.R)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"separate", Circle{0, 0, 5}, Circle{20, 0, 5}, false},
		{"touching is not overlap", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"overlap", Circle{0, 0, 5}, Circle{9, 0, 5}, true},
		{"coincident", Circle{3, 3, 1}, Circle{3, 3, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSeparation(t *testing.T) {
	nx, ny, depth := Separation(Circle{0, 0, 5}, Circle{0, 6, 5})
	if nx != 0 || ny != 1 {
		t.Errorf("Expected normal (0,1), got (%v,%v)", nx, ny)
	}
	if depth != 4 {
		t.Errorf("Expected depth 4, got %v", depth)
	}

	nx, ny, depth = Separation(Circle{2, 2, 3}, Circle{2, 2, 1})
	if nx != 1 || ny != 0 {
		t.Errorf("Expected fallback normal (1,0), got (%v,%v)", nx, ny)
	}
	if depth != 4 {
		t.Errorf("Expected full radius sum as depth, got %v", depth)
	}
}
