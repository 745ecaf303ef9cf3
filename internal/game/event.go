package game

// Event is a discrete input event consumed by Session.Dispatch
type Event int

const (
	EventNone Event = iota
	EventStrike
	EventStrengthUp
	EventStrengthDown
	EventDragUp
	EventDragDown
	EventSpeedUp
	EventSpeedDown
	EventReset
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventStrike:
		return "strike"
	case EventStrengthUp:
		return "strength-up"
	case EventStrengthDown:
		return "strength-down"
	case EventDragUp:
		return "drag-up"
	case EventDragDown:
		return "drag-down"
	case EventSpeedUp:
		return "speed-up"
	case EventSpeedDown:
		return "speed-down"
	case EventReset:
		return "reset"
	case EventQuit:
		return "quit"
	}
	return "none"
}
