package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen(12, 4) size = %dx%d", s.Width(), s.Height())
	}
	if s.String() != strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 12)+"\n", 4), "\n") {
		t.Errorf("new screen should be blank, got %q", s.String())
	}
	if b := s.Bounds(); b != (Rect{0, 0, 12, 4}) {
		t.Errorf("Bounds() = %+v, expected {0 0 12 4}", b)
	}

	if z := NewScreen(-3, 2); z.Width() != 0 || z.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %dx%d %q", z.Width(), z.Height(), z.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	s.SetColored(2, 3, '*', ColorBrightRed)

	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(2, 3); c.Rune != '*' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(2, 3) = %+v, expected '*' in bright red", c)
	}

	outside := []struct{ x, y int }{{-1, 0}, {10, 0}, {0, -1}, {0, 10}}
	for _, p := range outside {
		s.Set(p.x, p.y, 'A')
		if c := s.GetCell(p.x, p.y); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p.x, p.y, c)
		}
	}
	// Writes outside must not wrap onto a neighbouring row
	if s.Get(0, 1) != ' ' || s.Get(9, 0) != ' ' {
		t.Error("out-of-bounds Set leaked into the buffer")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill(NewRect(1, 1, 3, 2), '#', ColorRed)

	expected := "      \n ###  \n ###  \n      "
	if s.String() != expected {
		t.Errorf("after Fill String() = %q, expected %q", s.String(), expected)
	}
	if s.GetCell(3, 2).Color != ColorRed {
		t.Error("Fill should apply the color")
	}

	s.Fill(NewRect(4, 2, 10, 10), '.', ColorDefault)
	if s.Row(3) != "    .." {
		t.Errorf("clipped Fill Row(3) = %q", s.Row(3))
	}

	s.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("after Clear, (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"plain", 2, "Hello", "  Hello   "},
		{"clipped right", 7, "Hello", "       Hel"},
		{"clipped left", -2, "Hello", "llo       "},
		{"multibyte advances one column per rune", 0, "·*·", "·*·       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCenteredColored(1, "Boom!", ColorBrightYellow)

	if got := s.Row(1); got != "       Boom!        " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(7, 1).Color != ColorBrightYellow {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	expected := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should be drawn in the given color")
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a box narrower than 2 should draw nothing")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '-', ColorDefault)

	if got := s.Row(1); got != "  -----   " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 6)
	if s.Width() != 4 || s.Height() != 6 {
		t.Fatalf("after Resize(4, 6) size = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" || s.Row(5) != "Worl" {
		t.Errorf("shrink should keep the top-left, rows = %q, %q", s.Row(0), s.Row(5))
	}

	s.Resize(8, 7)
	if s.Row(0) != "Hell    " || s.Row(5) != "Worl    " || s.Row(6) != "        " {
		t.Errorf("grow should keep content and pad with blanks, got %q", s.String())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BB")

	if s.String() != "AAAAA\nBB   \n     " {
		t.Errorf("String() = %q", s.String())
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(3); got != "     " {
		t.Errorf("Row(3) = %q, expected spaces", got)
	}
}
