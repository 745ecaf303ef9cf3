package game

// Course dimensions in course units
const (
	CourseWidth  = 1500.0
	CourseHeight = 800.0
	BoundsMargin = 1.0
	StartX       = 750.0
	StartY       = 792.0
)

// Hazard strips sit on the floor at both horizontal extremes. Edges are
// fractions of the course size.
const (
	hazardTop       = 0.98   // of height
	rightHazardEdge = 0.875  // of width
	rightHazardSafe = 0.87   // of width
	leftHazardEdge  = 0.1175 // of width
	leftHazardSafe  = 0.119  // of width
)

// Course describes the playable area
type Course struct {
	Width, Height float64
	Left, Right   float64 // Lateral out-of-bounds limits
	Ceiling       float64
	Floor         float64
	Hazards       bool
	Start         Vec
}

func DefaultCourse() Course {
	return Course{
		Width:   CourseWidth,
		Height:  CourseHeight,
		Left:    BoundsMargin,
		Right:   CourseWidth - BoundsMargin,
		Ceiling: BoundsMargin,
		Floor:   CourseHeight,
		Hazards: true,
		Start:   Vec{X: StartX, Y: StartY},
	}
}

// InBounds reports whether x lies within the lateral limits
func (c Course) InBounds(x float64) bool {
	return x >= c.Left && x <= c.Right
}

// RestHeight is the ball center height when it sits on the floor
func (c Course) RestHeight(radius float64) float64 {
	return c.Floor - radius
}

// HazardTop is the top edge of both hazard strips
func (c Course) HazardTop() float64 {
	return hazardTop * c.Height
}

// LeftHazardEdge is the inner edge of the left strip
func (c Course) LeftHazardEdge() float64 {
	return leftHazardEdge * c.Width
}

// RightHazardEdge is the inner edge of the right strip
func (c Course) RightHazardEdge() float64 {
	return rightHazardEdge * c.Width
}

// Contact reports what happened to the ball in one boundary pass
type Contact struct {
	Collided    bool
	Hazard      bool
	OutOfBounds bool
}

// Resolve clamps the ball against floor, ceiling and hazard strips, then
// checks lateral bounds. Out of bounds is reported but never repositioned.
func Resolve(b Ball, c Course) (Ball, Contact) {
	var contact Contact

	if b.Y+b.Radius > c.Floor {
		b.Y = c.Floor - b.Radius
		b.VY = -b.VY
		contact.Collided = true
	}

	if b.Y-b.Radius < c.Ceiling {
		b.Y = c.Ceiling + b.Radius
		b.VY = -b.VY
		contact.Collided = true
	}

	if c.Hazards && b.Y+b.Radius >= c.HazardTop() {
		switch {
		case b.X >= c.RightHazardEdge()+b.Radius:
			b.X = rightHazardSafe*c.Width + b.Radius
			b.Y = c.HazardTop() - b.Radius
			b.VY = -b.VY
			b.VX = -abs(b.VX)
			contact.Collided = true
			contact.Hazard = true
		case b.X <= c.LeftHazardEdge()+b.Radius:
			b.X = leftHazardSafe*c.Width + b.Radius
			b.Y = c.HazardTop() - b.Radius
			b.VY = -b.VY
			b.VX = abs(b.VX)
			contact.Collided = true
			contact.Hazard = true
		}
	}

	if contact.Collided {
		b.VX *= b.Restitution
		b.VY *= b.Restitution
	}

	if !c.InBounds(b.X) {
		contact.OutOfBounds = true
	}

	return b, contact
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
