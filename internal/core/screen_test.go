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

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '#', ColorBrightRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 2) = %+v, expected '#' in red", cell)
	}

	s.Set(4, 2, 'x')
	if got := s.GetCell(4, 2); got.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", got.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Must not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 1, "Hello", ColorGreen)

	if got := s.Row(1); got != "       Hel" {
		t.Errorf("Row(1) = %q, expected text clipped at the right edge", got)
	}
	if s.GetCell(8, 1).Color != ColorGreen {
		t.Error("text cells should carry the requested color")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "▲■x")

	if got := s.Row(0); got != "▲■x   " {
		t.Errorf("Row(0) = %q, multibyte runes must take one cell each", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenFillRectAndClearLine(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(1, 0, 2, 2), '■', ColorGray)

	if got := s.String(); got != " ■■ \n ■■ " {
		t.Errorf("String() = %q", got)
	}

	s.ClearLine(0)
	if got := s.Row(0); got != "    " {
		t.Errorf("ClearLine left %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Join([]string{"ab", "ef", "  "}, "\n") {
		t.Errorf("Resize should keep overlapping content, got %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColored(1, 0, 'x', ColorBrightRed)
	s.Clear()

	if s.GetCell(1, 0) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset runes and colors")
	}
}
