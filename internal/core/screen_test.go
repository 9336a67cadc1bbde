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
			if s.GetCell(x, y) != (Cell{Rune: ' '}) {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorCube)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorCube {
		t.Errorf("GetCell(5, 5) = %+v, expected X in cube color", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorHUD)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorHUD)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorHUD)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want []Point
	}{
		{"horizontal", Point{1, 1}, Point{4, 1}, []Point{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical reversed", Point{2, 4}, Point{2, 1}, []Point{{2, 4}, {2, 3}, {2, 2}, {2, 1}}},
		{"diagonal", Point{0, 0}, Point{3, 3}, []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single cell", Point{5, 5}, Point{5, 5}, []Point{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawLine(tc.a, tc.b, '#', ColorCube)

			count := strings.Count(s.String(), "#")
			if count != len(tc.want) {
				t.Errorf("drew %d cells, expected %d:\n%s", count, len(tc.want), s.String())
			}
			for _, p := range tc.want {
				if s.Get(p.X, p.Y) != '#' {
					t.Errorf("expected '#' at %v", p)
				}
			}
		})
	}
}

func TestScreenDrawLineClipped(t *testing.T) {
	s := NewScreen(5, 5)
	// Endpoints far off screen must not panic or hang
	s.DrawLine(Point{-50, 2}, Point{50, 2}, '-', ColorGrid)

	if s.Row(2) != "-----" {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenFillConvex(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillConvex([]Point{{2, 2}, {6, 2}, {6, 5}, {2, 5}}, '=', ColorPaddle)

	for y := 2; y <= 5; y++ {
		for x := 2; x <= 6; x++ {
			if s.GetCell(x, y).Color != ColorPaddle {
				t.Errorf("expected fill at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(7, 3) != ' ' || s.Get(4, 1) != ' ' || s.Get(4, 6) != ' ' {
		t.Errorf("fill leaked outside the quad:\n%s", s.String())
	}
}

func TestScreenFillConvexDegenerate(t *testing.T) {
	s := NewScreen(10, 3)
	// Edge-on quad collapses to a line
	s.FillConvex([]Point{{1, 1}, {8, 1}, {8, 1}, {1, 1}}, '=', ColorPaddle)

	if got := strings.TrimSpace(s.Row(1)); got != "========" {
		t.Errorf("Row(1) = %q", got)
	}

	s.FillConvex(nil, '=', ColorPaddle)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear, row 0 = %q", s.Row(0))
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
	s.Set(0, 0, 'x', ColorDefault)
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
