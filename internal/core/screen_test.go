package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '@', ColorPlayer)
	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorPlayer {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in ColorPlayer", c)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("Negative sizes should clamp to zero")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 2)

	s.DrawText(2, 0, "suitors", ColorSuitor)
	s.DrawTextCentered(1, "ithaca", ColorTitle)

	if got := s.Row(0); got != "  suitors   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "   ithaca   " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(2, 0); c.Color != ColorSuitor {
		t.Errorf("Text color = %v, expected ColorSuitor", c.Color)
	}
}

func TestScreenDrawBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1, "██████████"},
		{2, "██████████"},
		{-1, "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		s := NewScreen(10, 1)
		s.DrawBar(0, 0, 10, tt.frac, ColorHP)
		if got := s.Row(0); got != tt.want {
			t.Errorf("DrawBar(%v) = %q, expected %q", tt.frac, got, tt.want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", s.String())
	}
}
