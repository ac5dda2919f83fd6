package core

import (
	"math"
	"testing"
)

func TestVecDirection(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		def      Direction
		expected Direction
	}{
		{"zero uses default", V(0, 0), Left, Left},
		{"right", V(3, 1), Up, Right},
		{"left", V(-3, 1), Up, Left},
		{"down", V(1, 3), Up, Down},
		{"up", V(1, -3), Down, Up},
		{"tie goes vertical", V(2, 2), Up, Down},
		{"negative tie goes vertical", V(-2, -2), Down, Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Direction(tc.def); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecProjectAndAngle(t *testing.T) {
	origin := V(1, 1)
	target := V(1, 11)

	angle := origin.AngleTo(target)
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Errorf("AngleTo() = %v, expected pi/2", angle)
	}

	p := origin.Project(angle, 10)
	if p.Distance(target) > 1e-9 {
		t.Errorf("Project() = %v, expected %v", p, target)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if a.Add(b) != V(4, -2) {
		t.Errorf("Add() = %v", a.Add(b))
	}
	if a.Sub(b) != V(-2, 6) {
		t.Errorf("Sub() = %v", a.Sub(b))
	}
	if a.Scale(2) != V(2, 4) {
		t.Errorf("Scale() = %v", a.Scale(2))
	}
	if a.Lerp(b, 0.5) != V(2, -1) {
		t.Errorf("Lerp() = %v", a.Lerp(b, 0.5))
	}
	if !V(0, 0).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestAngleDirection(t *testing.T) {
	for _, d := range Directions {
		if got := AngleDirection(d.Angle()); got != d {
			t.Errorf("AngleDirection(%v.Angle()) = %v", d, got)
		}
	}
}
