package snapshot

import (
	"math"

	"github.com/diegok/pixgolf/internal/game"
)

// FromSession captures the renderer-facing view of a session
func FromSession(s *game.Session, tick int) Frame {
	f := Frame{
		Tick:  tick,
		Phase: s.Phase.String(),
		Ball: BallState{
			X:      s.Ball.X,
			Y:      s.Ball.Y,
			VX:     s.Ball.VX,
			VY:     s.Ball.VY,
			Radius: s.Ball.Radius,
		},
		Course: Course{
			Width:           s.Course.Width,
			Height:          s.Course.Height,
			HazardTop:       s.Course.HazardTop(),
			LeftHazardEdge:  s.Course.LeftHazardEdge(),
			RightHazardEdge: s.Course.RightHazardEdge(),
		},
		Strokes: s.Strokes,
		Penalty: s.Penalty,
		Presets: Presets{
			Strength: s.Env.Strength(),
			Drag:     s.Env.Drag(),
			Speed:    s.Env.Speed(),
		},
	}

	if s.Phase != game.PhaseFlying {
		f.Aiming = true
		f.AimFrom = Point{X: s.Ball.X, Y: s.Ball.Y}
		f.AimTo = Point{X: s.Aim.Pointer.X, Y: s.Aim.Pointer.Y}
		f.Power = int(math.Round(s.Aim.Power))
		f.AngleDeg = s.Aim.Degrees()
	}

	return f
}
