package game

import "math"

// PowerDamping scales pointer distance into launch speed
const PowerDamping = 0.25

// Aim is the live aiming state, recomputed every tick outside of flight
type Aim struct {
	Pointer Vec
	Angle   float64 // Radians in [0, 2π), y-up
	Power   float64
}

// ComputeAngle returns the shot angle for a pointer relative to the ball,
// measured counter-clockwise in a y-up frame and normalized to [0, 2π).
func ComputeAngle(ball, pointer Vec) float64 {
	dx := pointer.X - ball.X
	dy := ball.Y - pointer.Y // screen y grows downward

	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx == 0:
		if dy > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	case dy == 0:
		// Pointer straight left must be exactly π
		if dx < 0 {
			return math.Pi
		}
		return 0
	}

	angle := math.Atan(dy / dx)
	switch {
	case dx < 0:
		angle += math.Pi
	case dy < 0:
		angle += 2 * math.Pi
	}

	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}

// ComputePower returns the launch power for the given strength multiplier
func ComputePower(ball, pointer Vec, strength float64) float64 {
	return strength * PowerDamping * pointer.Sub(ball).Len()
}

// LaunchVelocity converts angle and power into a screen-space velocity
func LaunchVelocity(angle, power float64) Vec {
	return Vec{
		X: power * math.Cos(angle),
		Y: -power * math.Sin(angle),
	}
}

// NewAim computes the full aim state for a pointer position
func NewAim(ball, pointer Vec, strength float64) Aim {
	return Aim{
		Pointer: pointer,
		Angle:   ComputeAngle(ball, pointer),
		Power:   ComputePower(ball, pointer, strength),
	}
}

// Degrees returns the aim angle rounded to whole degrees
func (a Aim) Degrees() int {
	return int(math.Round(a.Angle*180/math.Pi)) % 360
}
