package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 9, 4)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 2, true},
		{"top-left corner", 2, 1, true},
		{"last cell", 10, 4, true},
		{"right edge (exclusive)", 11, 2, false},
		{"bottom edge (exclusive)", 5, 5, false},
		{"left of rect", 1, 2, false},
		{"above rect", 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredIn(t *testing.T) {
	tests := []struct {
		name               string
		areaW, areaH, w, h int
		expected           Rect
	}{
		{"even fit", 80, 24, 20, 10, Rect{30, 7, 20, 10}},
		{"odd remainder", 81, 25, 20, 10, Rect{30, 7, 20, 10}},
		{"exact", 29, 11, 29, 11, Rect{0, 0, 29, 11}},
		{"larger than area", 10, 5, 14, 7, Rect{-2, -1, 14, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CenteredIn(tc.areaW, tc.areaH, tc.w, tc.h); got != tc.expected {
				t.Errorf("CenteredIn() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectInner(t *testing.T) {
	if got := NewRect(3, 2, 29, 11).Inner(); got != (Rect{4, 3, 27, 9}) {
		t.Errorf("Inner() = %+v, expected {4 3 27 9}", got)
	}
	if got := NewRect(0, 0, 1, 1).Inner(); got.W != 0 || got.H != 0 {
		t.Errorf("Inner() of a 1x1 rect = %+v, expected zero size", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
