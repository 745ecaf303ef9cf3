package snapshot

import (
	"encoding/gob"
	"time"
)

// MessageType identifies the type of trace record
type MessageType int

const (
	MsgHeader MessageType = iota
	MsgFrame
	MsgInput
)

// Message is the wrapper for all trace records
type Message struct {
	Type    MessageType
	Payload interface{}
}

// Header opens a recorded trace
type Header struct {
	Version      int
	StartedAt    time.Time
	CourseWidth  float64
	CourseHeight float64
}

// Input records one input event applied at a tick
type Input struct {
	Tick  int
	Event string
}

// Point is a position in course units
type Point struct {
	X float64
	Y float64
}

// BallState represents the ball's position and velocity
type BallState struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64
}

// Presets holds the displayed preset values
type Presets struct {
	Strength float64
	Drag     float64
	Speed    float64
}

// Course holds the static geometry the renderer draws
type Course struct {
	Width           float64
	Height          float64
	HazardTop       float64
	LeftHazardEdge  float64
	RightHazardEdge float64
}

// Frame is everything the renderer needs for one tick
type Frame struct {
	Tick    int
	Phase   string
	Ball    BallState
	Course  Course
	Strokes int
	Penalty bool
	Presets Presets

	// Aim fields are only meaningful while Aiming is set
	Aiming   bool
	AimFrom  Point
	AimTo    Point
	Power    int
	AngleDeg int
}

func init() {
	gob.Register(Header{})
	gob.Register(Input{})
	gob.Register(Frame{})
}
