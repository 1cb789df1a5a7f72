package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if cell := s.GetCell(x, y); cell != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, cell)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWithColor(3, 4, '●', ColorPurple)

	cell := s.GetCell(3, 4)
	if cell.Rune != '●' || cell.Color != ColorPurple {
		t.Errorf("GetCell(3, 4) = %+v, expected purple ●", cell)
	}

	// Out of bounds is silent
	s.SetWithColor(-1, 0, 'X', ColorRed)
	s.SetWithColor(0, 99, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColor(5, 0, "Score", ColorYellow)

	if s.Row(0) != "     Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(5, 0).Color != ColorYellow {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Errorf("centered text not at x=%d: %q", x, s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.FillRect(NewRect(1, 1, 2, 2), '█', ColorBlue)

	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			if cell := s.GetCell(x, y); cell.Rune != '█' || cell.Color != ColorBlue {
				t.Errorf("cell (%d, %d) = %+v, expected blue block", x, y, cell)
			}
		}
	}
	if s.Get(3, 3) != ' ' {
		t.Error("FillRect should not touch cells outside the rect")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(5, 1)
	if s.Width() != 5 || s.Height() != 1 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should clear the buffer")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionTapRed)
	f.Set(ActionTapBlue)

	if !f.Has(ActionTapRed) || !f.Has(ActionTapBlue) {
		t.Error("frame should hold both taps")
	}
	if f.Has(ActionTapGreen) {
		t.Error("frame should not hold an unset action")
	}

	f.Clear()
	if f.Has(ActionTapRed) {
		t.Error("Clear should drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionStart) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionStart)
	if !zero.Has(ActionStart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ val, lo, hi, expected int }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
