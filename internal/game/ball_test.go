package game

import (
	"math"
	"testing"
)

func TestNewBall_Mass(t *testing.T) {
	ball := NewBall(10.0, 20.0, 10, 0.8)

	want := 4.0 / 3.0 * math.Pi * 1000
	if math.Abs(ball.Mass-want) > 1e-9 {
		t.Errorf("expected mass %f, got %f", want, ball.Mass)
	}
	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("expected ball at rest, got v=(%f, %f)", ball.VX, ball.VY)
	}
}

func TestAdvance_NoDrag(t *testing.T) {
	ball := NewBall(10.0, 20.0, 10, 0.8)
	ball.VX = 2.0
	ball.VY = -4.0

	got := Advance(ball, 0.5, 10, 0)

	// velocity first, then position from the new velocity
	if got.VY != 1.0 {
		t.Errorf("expected VY=1.0, got %f", got.VY)
	}
	if got.VX != 2.0 {
		t.Errorf("expected VX=2.0 (unchanged), got %f", got.VX)
	}
	if got.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", got.X)
	}
	if got.Y != 20.5 {
		t.Errorf("expected Y=20.5, got %f", got.Y)
	}
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	ball := NewBall(10.0, 20.0, 10, 0.8)
	ball.VX = 3.0

	Advance(ball, 1, 9.8, 1)

	if ball.X != 10.0 || ball.VX != 3.0 || ball.VY != 0 {
		t.Errorf("input ball was modified: %+v", ball)
	}
}

func TestAdvance_DragSlowsBall(t *testing.T) {
	ball := NewBall(0, 0, 10, 0.8)
	ball.VX = 40.0
	ball.VY = -30.0

	free := Advance(ball, 0.35, 0, 0)
	dragged := Advance(ball, 0.35, 0, 5)

	if dragged.Speed() >= free.Speed() {
		t.Errorf("expected drag to reduce speed: free=%f dragged=%f", free.Speed(), dragged.Speed())
	}
	// linear drag never reverses direction at these magnitudes
	if dragged.VX <= 0 || dragged.VY >= 0 {
		t.Errorf("expected drag to keep direction, got v=(%f, %f)", dragged.VX, dragged.VY)
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	ball := NewBall(123.4, 567.8, 10, 0.8)
	ball.VX = 17.3
	ball.VY = -42.1

	a := ball
	b := ball
	for i := 0; i < 500; i++ {
		a = Advance(a, 0.35, 9.80665, 0.2)
		b = Advance(b, 0.35, 9.80665, 0.2)
	}

	if a != b {
		t.Errorf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestAdvance_NeverProducesNaN(t *testing.T) {
	for _, drag := range DragTable.Values {
		for _, v := range []float64{-1000, -1, 0, 0.5, 1000} {
			ball := NewBall(v, v, 10, 0.8)
			ball.VX = v
			ball.VY = -v
			for i := 0; i < 100; i++ {
				ball = Advance(ball, 0.35*2, 9.80665, drag)
			}
			for _, f := range []float64{ball.X, ball.Y, ball.VX, ball.VY} {
				if math.IsNaN(f) || math.IsInf(f, 0) {
					t.Fatalf("drag=%v v=%v produced non-finite state %+v", drag, v, ball)
				}
			}
		}
	}
}

func TestBall_PlaceAt(t *testing.T) {
	ball := NewBall(0, 0, 10, 0.8)
	ball.VX = 5
	ball.VY = 5

	ball.PlaceAt(Vec{X: 3, Y: 4})

	if ball.Pos() != (Vec{X: 3, Y: 4}) {
		t.Errorf("expected position (3, 4), got %+v", ball.Pos())
	}
	if ball.Speed() != 0 {
		t.Errorf("expected zero speed, got %f", ball.Speed())
	}
}

func TestBall_Speed(t *testing.T) {
	ball := NewBall(0, 0, 10, 0.8)
	ball.VX = 3.0
	ball.VY = 4.0

	speed := ball.Speed()

	// 3-4-5 triangle
	if speed != 5.0 {
		t.Errorf("expected speed=5.0, got %f", speed)
	}
}
