package snapshot

import (
	"testing"
	"time"

	"github.com/diegok/pixgolf/internal/game"
)

func TestFromSession_Aiming(t *testing.T) {
	s := game.NewSession(game.DefaultPhysics(), game.DefaultCourse(), game.DefaultEnvironment())
	s.Tick(time.Unix(1000, 0), game.Vec{X: 650, Y: 692})

	f := FromSession(s, 7)

	if f.Tick != 7 {
		t.Errorf("expected tick 7, got %d", f.Tick)
	}
	if !f.Aiming {
		t.Fatal("expected aiming frame")
	}
	if f.AimFrom != (Point{X: 750, Y: 792}) || f.AimTo != (Point{X: 650, Y: 692}) {
		t.Errorf("unexpected aim line %+v -> %+v", f.AimFrom, f.AimTo)
	}
	if f.AngleDeg != 135 {
		t.Errorf("expected 135 degrees, got %d", f.AngleDeg)
	}
	if f.Power <= 0 {
		t.Errorf("expected positive power, got %d", f.Power)
	}
	if f.Presets.Strength != 0.5 || f.Presets.Drag != 0.2 || f.Presets.Speed != 1 {
		t.Errorf("unexpected presets %+v", f.Presets)
	}
	if f.Course.Width != game.CourseWidth {
		t.Errorf("expected course width %f, got %f", game.CourseWidth, f.Course.Width)
	}
}

func TestFromSession_FlyingHidesAim(t *testing.T) {
	s := game.NewSession(game.DefaultPhysics(), game.DefaultCourse(), game.DefaultEnvironment())
	s.Tick(time.Unix(1000, 0), game.Vec{X: 650, Y: 692})
	s.Dispatch(game.EventStrike)

	f := FromSession(s, 8)

	if f.Aiming {
		t.Error("expected no aim while flying")
	}
	if f.Phase != "flying" {
		t.Errorf("expected phase flying, got %s", f.Phase)
	}
	if f.Strokes != 1 {
		t.Errorf("expected 1 stroke, got %d", f.Strokes)
	}
}
