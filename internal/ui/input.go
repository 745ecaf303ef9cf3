package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pixgolf/internal/game"
)

// KeyToEvent converts a key press to a game event
func KeyToEvent(key tcell.Key, r rune) game.Event {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit
	case tcell.KeyUp:
		return game.EventStrengthUp
	case tcell.KeyDown:
		return game.EventStrengthDown
	case tcell.KeyRight:
		return game.EventDragUp
	case tcell.KeyLeft:
		return game.EventDragDown
	case tcell.KeyEnter:
		return game.EventStrike
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return game.EventQuit
		case ' ':
			return game.EventStrike
		case '+', '=':
			return game.EventSpeedUp
		case '-', '_':
			return game.EventSpeedDown
		case 'r', 'R':
			return game.EventReset
		case 'w', 'W':
			return game.EventStrengthUp
		case 's', 'S':
			return game.EventStrengthDown
		case 'd', 'D':
			return game.EventDragUp
		case 'a', 'A':
			return game.EventDragDown
		}
	}
	return game.EventNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	return KeyToEvent(key, r) == game.EventQuit
}

// Pointer tracks the mouse in course units
type Pointer struct {
	Pos     game.Vec
	buttons tcell.ButtonMask
}

// HandleMouse moves the pointer to the given cell and reports whether the
// primary button was freshly pressed. Holding the button does not repeat.
func (p *Pointer) HandleMouse(col, row int, buttons tcell.ButtonMask, scale Scale) bool {
	if scale.InCourse(col, row) {
		p.Pos = scale.ToCourse(col, row)
	}
	pressed := buttons&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0
	p.buttons = buttons
	return pressed
}
