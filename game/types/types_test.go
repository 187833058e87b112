package types

import "testing"

func TestGridInBounds(t *testing.T) {
	g := NewGrid(20)
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{19, 19}, true},
		{Point{-1, 10}, false},
		{Point{10, -1}, false},
		{Point{20, 0}, false},
		{Point{0, 20}, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	if !Opposite(Left, Right) || !Opposite(Up, Down) {
		t.Error("axis reversals should be opposite")
	}
	if Opposite(Left, Up) || Opposite(Right, Right) {
		t.Error("perpendicular or equal directions are not opposite")
	}
}

func TestIsUnit(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !IsUnit(d) {
			t.Errorf("%v should be a unit direction", d)
		}
	}
	for _, d := range []Direction{{0, 0}, {1, 1}, {2, 0}} {
		if IsUnit(d) {
			t.Errorf("%v should not be a unit direction", d)
		}
	}
}

func TestStartBodyFitsSmallestGrid(t *testing.T) {
	g := NewGrid(MinGridSize)
	for _, p := range StartBody {
		if !g.InBounds(p) {
			t.Errorf("start cell %v outside %dx%d grid", p, MinGridSize, MinGridSize)
		}
	}
	if !g.InBounds(StartBody[0].Add(StartDirection)) {
		t.Error("first step from the start position leaves the smallest grid")
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || GameOver.String() != "game over" || Phase(9).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
