package game

import "math"

const (
	DefaultRadius      = 10.0
	DefaultRestitution = 0.8
	AirDrag            = 0.3 // Base drag scale, multiplied by the drag preset
)

// Vec is a point or vector in course units (screen-oriented, y grows downward)
type Vec struct {
	X, Y float64
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

type Ball struct {
	X, Y        float64
	VX, VY      float64
	Radius      float64
	Mass        float64 // Only used by drag
	Restitution float64 // Velocity kept after a bounce, 0..1
}

func NewBall(x, y, radius, restitution float64) Ball {
	return Ball{
		X:           x,
		Y:           y,
		Radius:      radius,
		Mass:        4.0 / 3.0 * math.Pi * radius * radius * radius,
		Restitution: restitution,
	}
}

// Pos returns the ball center
func (b Ball) Pos() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// Speed returns current speed
func (b Ball) Speed() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}

// Stop zeroes the velocity
func (b *Ball) Stop() {
	b.VX = 0
	b.VY = 0
}

// PlaceAt moves the ball to p and stops it
func (b *Ball) PlaceAt(p Vec) {
	b.X = p.X
	b.Y = p.Y
	b.Stop()
}

// Advance runs one semi-implicit Euler step: gravity, then linear drag,
// then position from the updated velocity. drag is the preset multiplier;
// zero disables drag entirely.
func Advance(b Ball, dt, gravity, drag float64) Ball {
	b.VY += gravity * dt

	if drag != 0 {
		k := 6 * math.Pi * b.Radius * drag * AirDrag
		b.VX -= k * b.VX / b.Mass * dt
		b.VY -= k * b.VY / b.Mass * dt
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt
	return b
}
