package vmath

import "math"

// Circle is a center and radius in pixel space
type Circle struct {
	X, Y float64
	R    float64
}

// CircleFromBox fits a circle to the sprite box at (x, y) sized w*h
// The radius is half the box width scaled by radiusScale
func CircleFromBox(x, y, w, h int, radiusScale float64) Circle {
	return Circle{
		X: float64(x) + float64(w)/2,
		Y: float64(y) + float64(h)/2,
		R: float64(w) / 2 * radiusScale,
	}
}

// Overlaps reports strict overlap using squared distances, no square root
func Overlaps(a, b Circle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	sum := a.R + b.R
	return dx*dx+dy*dy < sum*sum
}

// Separation returns the unit normal pointing from a to b and the penetration depth
// Coincident centers fall back to the +X normal
func Separation(a, b Circle) (nx, ny, depth float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		nx, ny = dx/dist, dy/dist
	} else {
		nx, ny = 1, 0
	}
	return nx, ny, a.R + b.R - dist
}
