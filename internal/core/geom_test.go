package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(380, 300, 40, 40)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"vehicle on top of player", NewRect(370, 300, 60, 30), true},
		{"vehicle touching right edge", NewRect(420, 300, 60, 30), false},
		{"vehicle touching left edge", NewRect(320, 300, 60, 30), false},
		{"vehicle in the lane below", NewRect(380, 340, 60, 30), false},
		{"log reaching into player", NewRect(260.5, 310, 120, 30), true},
		{"log just short of player", NewRect(260, 310, 120, 30), false},
		{"player inside a log", NewRect(340, 290, 120, 60), true},
		{"far away", NewRect(-160, 450, 60, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(player); got != tc.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{380, 330, 0, 380},
		{380, 330, 0.5, 355},
		{380, 330, 1, 330},
		{500, 550, 0.25, 512.5},
		{0, 10, 2, 20},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}
