// Package physics provides collision detection, clamping and sampling utilities.
package physics

import (
	"math"
	"math/rand"
)

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns a rectangle of size w x h centered on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the center point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of (x, y) and its original length.
// A zero vector returns (0, 0, 0).
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// RandRange returns a uniformly distributed value in [lo, hi).
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandSign returns -1 or +1 with equal probability.
func RandSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
