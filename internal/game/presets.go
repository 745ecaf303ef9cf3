package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration marks a preset index outside its table
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Table is an ordered list of discrete presets
type Table struct {
	Name   string
	Values []float64
}

var (
	StrengthTable = Table{
		Name:   "strength",
		Values: []float64{.01, .02, .04, .08, .16, .25, .50, .75, 1},
	}
	DragTable = Table{
		Name: "drag",
		Values: []float64{0, .01, .02, .03, .04, .05, .1, .2, .3, .4, .5, .6, .7,
			.8, .9, 1, 1.25, 1.5, 1.75, 2, 2.5, 3, 3.5, 4, 4.5, 5},
	}
	SpeedTable = Table{
		Name:   "speed",
		Values: []float64{.25, .5, .75, 1, 1.5, 2},
	}
)

const (
	DefaultStrengthIndex = 6 // 0.50
	DefaultDragIndex     = 7 // 0.2
	DefaultSpeedIndex    = 3 // 1x
)

// Len returns the number of presets
func (t Table) Len() int {
	return len(t.Values)
}

// At returns the preset at index i
func (t Table) At(i int) (float64, error) {
	if i < 0 || i >= len(t.Values) {
		return 0, errors.Wrapf(ErrInvalidConfiguration, "%s preset %d out of range [0, %d)", t.Name, i, len(t.Values))
	}
	return t.Values[i], nil
}

// Clamp moves index i by delta, staying inside the table
func (t Table) Clamp(i, delta int) int {
	next := i + delta
	if next < 0 || next >= len(t.Values) {
		return i
	}
	return next
}

func (t Table) mustAt(i int) float64 {
	v, err := t.At(i)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	return v
}

// Environment holds the selected preset indices
type Environment struct {
	StrengthIndex int
	DragIndex     int
	SpeedIndex    int
}

func DefaultEnvironment() Environment {
	return Environment{
		StrengthIndex: DefaultStrengthIndex,
		DragIndex:     DefaultDragIndex,
		SpeedIndex:    DefaultSpeedIndex,
	}
}

// NewEnvironment validates the given indices against their tables
func NewEnvironment(strength, drag, speed int) (Environment, error) {
	env := Environment{StrengthIndex: strength, DragIndex: drag, SpeedIndex: speed}
	if _, err := StrengthTable.At(strength); err != nil {
		return Environment{}, err
	}
	if _, err := DragTable.At(drag); err != nil {
		return Environment{}, err
	}
	if _, err := SpeedTable.At(speed); err != nil {
		return Environment{}, err
	}
	return env, nil
}

// Strength returns the current swing strength multiplier
func (e Environment) Strength() float64 {
	return StrengthTable.mustAt(e.StrengthIndex)
}

// Drag returns the current drag multiplier
func (e Environment) Drag() float64 {
	return DragTable.mustAt(e.DragIndex)
}

// Speed returns the current simulation speed multiplier
func (e Environment) Speed() float64 {
	return SpeedTable.mustAt(e.SpeedIndex)
}

func (e *Environment) adjustStrength(delta int) {
	e.StrengthIndex = StrengthTable.Clamp(e.StrengthIndex, delta)
}

func (e *Environment) adjustDrag(delta int) {
	e.DragIndex = DragTable.Clamp(e.DragIndex, delta)
}

func (e *Environment) adjustSpeed(delta int) {
	e.SpeedIndex = SpeedTable.Clamp(e.SpeedIndex, delta)
}
