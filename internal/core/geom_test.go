package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 3, 4, true},
		{"top-left corner", 2, 3, true},
		{"right edge exclusive", 6, 4, false},
		{"bottom edge exclusive", 3, 8, false},
		{"left of rect", 1, 4, false},
		{"above rect", 3, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if got := r.Right(); got != 4 {
		t.Errorf("Right() = %d, want 4", got)
	}
	if got := r.Bottom(); got != 6 {
		t.Errorf("Bottom() = %d, want 6", got)
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 10, 6)
	cx, cy := r.Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center() = (%d, %d), want (5, 3)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs(-7) = %d, want 7", got)
	}
	if got := Abs(7); got != 7 {
		t.Errorf("Abs(7) = %d, want 7", got)
	}
	if got := Abs(0); got != 0 {
		t.Errorf("Abs(0) = %d, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min(2, 5) = %d, want 2", got)
	}
	if got := Max(2, 5); got != 5 {
		t.Errorf("Max(2, 5) = %d, want 5", got)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
