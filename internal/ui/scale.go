package ui

import (
	"math"

	"github.com/diegok/pixgolf/internal/game"
)

// Rows reserved above and below the course for the HUD
const (
	hudTop    = 1
	hudBottom = 1
)

// Scale maps course units to terminal cells. It is the only place where
// positions are rounded, and nothing rounded flows back into the game.
type Scale struct {
	X, Y   float64 // Cells per course unit
	Cols   int
	Rows   int
	Offset int // First course row on screen
}

// NewScale fits a course of the given size into a screen
func NewScale(screenW, screenH int, courseW, courseH float64) Scale {
	rows := screenH - hudTop - hudBottom
	if rows < 1 {
		rows = 1
	}
	cols := screenW
	if cols < 1 {
		cols = 1
	}
	return Scale{
		X:      float64(cols) / courseW,
		Y:      float64(rows) / courseH,
		Cols:   cols,
		Rows:   rows,
		Offset: hudTop,
	}
}

// ToCell converts a course position to a screen cell
func (s Scale) ToCell(x, y float64) (int, int) {
	col := int(math.Floor(x * s.X))
	row := int(math.Floor(y*s.Y)) + s.Offset
	return col, row
}

// ToCourse converts a screen cell to the course position at its center
func (s Scale) ToCourse(col, row int) game.Vec {
	return game.Vec{
		X: (float64(col) + 0.5) / s.X,
		Y: (float64(row-s.Offset) + 0.5) / s.Y,
	}
}

// InCourse reports whether a cell lies in the course area
func (s Scale) InCourse(col, row int) bool {
	return col >= 0 && col < s.Cols && row >= s.Offset && row < s.Offset+s.Rows
}
