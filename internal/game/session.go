package game

import "time"

// Physics holds the tunable simulation constants
type Physics struct {
	Gravity     float64
	TimeStep    float64 // Base dt per tick, scaled by the speed preset
	Radius      float64
	Restitution float64
	RestFuzz    float64
	Penalty     time.Duration
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:     9.80665,
		TimeStep:    0.35,
		Radius:      DefaultRadius,
		Restitution: DefaultRestitution,
		RestFuzz:    0,
		Penalty:     1200 * time.Millisecond,
	}
}

// Phase is the stroke lifecycle state
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseFlying
	PhaseResting
)

func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "flying"
	case PhaseResting:
		return "resting"
	}
	return "aiming"
}

// Outcome summarizes what a tick did to the ball
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBounced
	OutcomeRested
	OutcomeOutOfBounds
)

// TickResult is returned by Session.Tick
type TickResult struct {
	Outcome Outcome
	Contact Contact
	Frame   int // Flight update frame, 0 outside of flight
}

// Session owns all state of one game: ball, aim, presets and score
type Session struct {
	Physics Physics
	Course  Course
	Env     Environment

	Ball      Ball
	Aim       Aim
	Phase     Phase
	Strokes   int
	LastSafe  Vec
	Penalty   bool
	PenaltyAt time.Time

	flightFrame int
}

// NewSession creates a session with the ball at the course start
func NewSession(phys Physics, course Course, env Environment) *Session {
	s := &Session{
		Physics: phys,
		Course:  course,
		Env:     env,
	}
	s.Reset()
	return s
}

// Reset starts a new game
func (s *Session) Reset() {
	s.Ball = NewBall(s.Course.Start.X, s.Course.Start.Y, s.Physics.Radius, s.Physics.Restitution)
	s.Aim = Aim{}
	s.Phase = PhaseAiming
	s.Strokes = 0
	s.LastSafe = s.Course.Start
	s.Penalty = false
	s.PenaltyAt = time.Time{}
	s.flightFrame = 0
}

// Dt returns the simulation step for the current speed preset
func (s *Session) Dt() float64 {
	return s.Physics.TimeStep * s.Env.Speed()
}

// RestHeight returns the canonical on-ground height for the ball
func (s *Session) RestHeight() float64 {
	return s.Course.RestHeight(s.Ball.Radius)
}

// Dispatch applies one input event. Returns true when the event asks to quit.
func (s *Session) Dispatch(ev Event) bool {
	switch ev {
	case EventStrike:
		s.strike()
	case EventStrengthUp:
		s.Env.adjustStrength(1)
	case EventStrengthDown:
		s.Env.adjustStrength(-1)
	case EventDragUp:
		s.Env.adjustDrag(1)
	case EventDragDown:
		s.Env.adjustDrag(-1)
	case EventSpeedUp:
		s.Env.adjustSpeed(1)
	case EventSpeedDown:
		s.Env.adjustSpeed(-1)
	case EventReset:
		s.Reset()
	case EventQuit:
		return true
	}
	return false
}

// strike launches the ball along the current aim. Ignored during flight.
func (s *Session) strike() {
	if s.Phase == PhaseFlying {
		return
	}

	// Aim may be stale if the strength changed since the last tick
	s.Aim = NewAim(s.Ball.Pos(), s.Aim.Pointer, s.Env.Strength())

	s.LastSafe = s.Ball.Pos()
	v := LaunchVelocity(s.Aim.Angle, s.Aim.Power)
	s.Ball.VX = v.X
	s.Ball.VY = v.Y
	s.Strokes++
	s.Phase = PhaseFlying
	s.flightFrame = 0
}

// Tick runs one simulation step with the live pointer position
func (s *Session) Tick(now time.Time, pointer Vec) TickResult {
	if s.Penalty && now.Sub(s.PenaltyAt) > s.Physics.Penalty {
		s.Penalty = false
	}

	if s.Phase == PhaseResting {
		s.Phase = PhaseAiming
	}

	if s.Phase == PhaseAiming {
		s.Aim = NewAim(s.Ball.Pos(), pointer, s.Env.Strength())
		return TickResult{}
	}

	s.flightFrame++
	result := TickResult{Frame: s.flightFrame}

	s.Ball = Advance(s.Ball, s.Dt(), s.Physics.Gravity, s.Env.Drag())
	s.Ball, result.Contact = Resolve(s.Ball, s.Course)
	if result.Contact.Collided {
		result.Outcome = OutcomeBounced
	}

	switch {
	case result.Contact.OutOfBounds:
		s.outOfBounds(now)
		result.Outcome = OutcomeOutOfBounds
	case IsAtRest(s.Ball, s.RestHeight(), s.Physics.RestFuzz):
		s.Ball.Y = s.RestHeight()
		s.Ball.Stop()
		s.Phase = PhaseResting
		s.flightFrame = 0
		result.Outcome = OutcomeRested
	}

	return result
}

// outOfBounds charges a penalty stroke and puts the ball back into play
func (s *Session) outOfBounds(now time.Time) {
	s.Strokes++
	s.Penalty = true
	s.PenaltyAt = now

	if s.Course.InBounds(s.LastSafe.X) {
		s.Ball.PlaceAt(s.LastSafe)
	} else {
		s.Ball.PlaceAt(s.Course.Start)
	}

	s.Phase = PhaseAiming
	s.flightFrame = 0
}
