package game

import (
	"math"
	"testing"
)

func TestResolve_FloorBounce(t *testing.T) {
	course := DefaultCourse()
	ball := NewBall(750, 795, 10, 0.8)
	ball.VX = 3
	ball.VY = 20

	got, contact := Resolve(ball, course)

	if !contact.Collided {
		t.Fatal("expected collision with floor")
	}
	if got.Y != 790 {
		t.Errorf("expected ball clamped to Y=790, got %f", got.Y)
	}
	if got.VY >= 0 {
		t.Errorf("expected upward velocity after bounce, got %f", got.VY)
	}
	if math.Abs(math.Abs(got.VY)-0.8*20) > 1e-9 {
		t.Errorf("expected |VY|=16, got %f", math.Abs(got.VY))
	}
	if math.Abs(got.VX-0.8*3) > 1e-9 {
		t.Errorf("expected VX=2.4, got %f", got.VX)
	}
	if contact.OutOfBounds || contact.Hazard {
		t.Errorf("unexpected contact flags %+v", contact)
	}
}

func TestResolve_Ceiling(t *testing.T) {
	course := DefaultCourse()
	ball := NewBall(750, 5, 10, 1)
	ball.VY = -12

	got, contact := Resolve(ball, course)

	if !contact.Collided {
		t.Fatal("expected collision with ceiling")
	}
	if got.Y != course.Ceiling+10 {
		t.Errorf("expected Y=%f, got %f", course.Ceiling+10, got.Y)
	}
	if got.VY != 12 {
		t.Errorf("expected VY=12, got %f", got.VY)
	}
}

func TestResolve_RestingBallIsNotBouncedAgain(t *testing.T) {
	course := DefaultCourse()
	ball := NewBall(750, course.RestHeight(10), 10, 0.8)

	for i := 0; i < 3; i++ {
		var contact Contact
		ball, contact = Resolve(ball, course)
		if contact.Collided {
			t.Fatalf("pass %d: resting ball reported a collision", i)
		}
	}
	if ball.VY != 0 || ball.Y != 790 {
		t.Errorf("expected ball unchanged at Y=790 VY=0, got Y=%f VY=%f", ball.Y, ball.VY)
	}
}

func TestResolve_RightHazardDeflectsLeft(t *testing.T) {
	course := DefaultCourse()
	ball := NewBall(1400, 790, 10, 0.8)
	ball.VX = 5
	ball.VY = 3

	got, contact := Resolve(ball, course)

	if !contact.Hazard || !contact.Collided {
		t.Fatalf("expected hazard contact, got %+v", contact)
	}
	if got.X != 0.87*1500+10 {
		t.Errorf("expected X=%f, got %f", 0.87*1500+10, got.X)
	}
	if got.Y != course.HazardTop()-10 {
		t.Errorf("expected Y=%f, got %f", course.HazardTop()-10, got.Y)
	}
	if got.VX >= 0 {
		t.Errorf("expected VX < 0 away from right hazard, got %f", got.VX)
	}
	if math.Abs(got.VY+0.8*3) > 1e-9 {
		t.Errorf("expected VY=-2.4, got %f", got.VY)
	}
}

func TestResolve_LeftHazardForcesRightEvenWhenMovingRight(t *testing.T) {
	course := DefaultCourse()

	for _, vx := range []float64{-5, 5} {
		ball := NewBall(100, 790, 10, 0.8)
		ball.VX = vx

		got, contact := Resolve(ball, course)

		if !contact.Hazard {
			t.Fatalf("vx=%v: expected hazard contact", vx)
		}
		if math.Abs(got.VX-4) > 1e-9 {
			t.Errorf("vx=%v: expected VX=4, got %f", vx, got.VX)
		}
		if got.X != 0.119*1500+10 {
			t.Errorf("vx=%v: expected X=%f, got %f", vx, 0.119*1500+10, got.X)
		}
	}
}

func TestResolve_HazardIgnoredInAir(t *testing.T) {
	course := DefaultCourse()
	ball := NewBall(1400, 400, 10, 0.8)
	ball.VX = 5

	_, contact := Resolve(ball, course)

	if contact.Collided || contact.Hazard {
		t.Errorf("expected no contact above hazard, got %+v", contact)
	}
}

func TestResolve_OutOfBoundsIsReportedNotMoved(t *testing.T) {
	course := DefaultCourse()

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"past right", 1500, true},
		{"right edge", 1499, false},
		{"left edge", 1, false},
		{"past left", 0.5, true},
		{"middle", 750, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(tt.x, 400, 10, 0.8)
			got, contact := Resolve(ball, course)
			if contact.OutOfBounds != tt.want {
				t.Errorf("x=%v: expected OutOfBounds=%v, got %v", tt.x, tt.want, contact.OutOfBounds)
			}
			if got.X != tt.x {
				t.Errorf("x=%v: ball was moved to %f", tt.x, got.X)
			}
		})
	}
}
