package game

import "testing"

func TestIsAtRest(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		y      float64
		fuzz   float64
		want   bool
	}{
		{"still on ground", 0, 0, 790, 0, true},
		{"slow bounce", 0.5, -4.9, 790, 0, true},
		{"vertical too fast", 0, -5, 790, 0, false},
		{"rolling", 1, 0, 790, 0, false},
		{"above ground", 0, 0, 789, 0, false},
		{"within fuzz", 0, 0, 788, 2, true},
		{"outside fuzz", 0, 0, 787, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(750, tt.y, 10, 0.8)
			ball.VX = tt.vx
			ball.VY = tt.vy
			if got := IsAtRest(ball, 790, tt.fuzz); got != tt.want {
				t.Errorf("IsAtRest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAtRest_Idempotent(t *testing.T) {
	ball := NewBall(750, 790, 10, 0.8)
	for i := 0; i < 10; i++ {
		if !IsAtRest(ball, 790, 0) {
			t.Fatalf("call %d: expected ball at rest", i)
		}
	}
}
