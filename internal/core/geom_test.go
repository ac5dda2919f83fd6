package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "shared horizontal edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "shared corner only",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.99, 9.99, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectCenterRoundTrip(t *testing.T) {
	points := []Vec2{
		V(0, 0),
		V(12.5, -3.25),
		V(-1000, 1000),
		V(1e-9, 7e6),
	}

	for _, p := range points {
		r := NewRect(3, 4, 9, 18)
		r.SetCenter(p)
		got := r.Center()
		if math.Abs(got.X-p.X) > 1e-6 || math.Abs(got.Y-p.Y) > 1e-6 {
			t.Errorf("Center() after SetCenter(%v) = %v", p, got)
		}
		if r.W != 9 || r.H != 18 {
			t.Errorf("SetCenter changed size to %vx%v", r.W, r.H)
		}
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)

	moved := r.Translated(V(10, -2))
	if moved != NewRect(11, 0, 3, 4) {
		t.Errorf("Translated() = %v", moved)
	}
	if r != NewRect(1, 2, 3, 4) {
		t.Errorf("Translated() mutated receiver: %v", r)
	}

	r.Translate(V(-1, -2))
	if r != NewRect(0, 0, 3, 4) {
		t.Errorf("Translate() = %v", r)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(V(10, 10), 4, 6)
	if r != NewRect(8, 7, 4, 6) {
		t.Errorf("RectFromCenter() = %v", r)
	}
	if r.Right() != 12 || r.Bottom() != 13 {
		t.Errorf("edges = (%v, %v), expected (12, 13)", r.Right(), r.Bottom())
	}
}

func TestRectClampInto(t *testing.T) {
	bounds := NewRect(0, 0, 100, 50)

	r := NewRect(-5, 45, 10, 10)
	r.ClampInto(bounds)
	if r != NewRect(0, 40, 10, 10) {
		t.Errorf("ClampInto() = %v", r)
	}

	r = NewRect(95, -3, 10, 10)
	r.ClampInto(bounds)
	if r != NewRect(90, 0, 10, 10) {
		t.Errorf("ClampInto() = %v", r)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		x, expected float64
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.875},
		{-1, 0}, // clamped
		{2, 1},  // clamped
	}

	for _, tc := range tests {
		if got := EaseOutCubic(tc.x); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("EaseOutCubic(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}
