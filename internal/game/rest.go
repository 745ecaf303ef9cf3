package game

import "math"

// Rest thresholds are tuning constants, not derived from the physics
const (
	RestVelocityY = 5.0
	RestVelocityX = 1.0
)

// IsAtRest reports whether a flying ball should be treated as stopped:
// both velocity components are small and the ball sits within fuzz of restY.
func IsAtRest(b Ball, restY, fuzz float64) bool {
	return math.Abs(b.VY) < RestVelocityY &&
		math.Abs(b.VX) < RestVelocityX &&
		math.Abs(b.Y-restY) <= fuzz
}
