package core

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: -1, Y: 2}

	got := p.Add(q)
	if got != (Point{X: 2, Y: 6}) {
		t.Errorf("Add() = %+v, expected {2 6}", got)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{X: 0, Y: -1}},
		{DirDown, Point{X: 0, Y: 1}},
		{DirLeft, Point{X: -1, Y: 0}},
		{DirRight, Point{X: 1, Y: 0}},
		{DirNone, Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Direction
		expected bool
	}{
		{"up vs down", DirUp, DirDown, true},
		{"down vs up", DirDown, DirUp, true},
		{"left vs right", DirLeft, DirRight, true},
		{"right vs left", DirRight, DirLeft, true},
		{"up vs left", DirUp, DirLeft, false},
		{"right vs down", DirRight, DirDown, false},
		{"same direction", DirUp, DirUp, false},
		{"none vs up", DirNone, DirUp, false},
		{"up vs none", DirUp, DirNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Opposite(tc.b); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Opposite(tc.a); got != tc.expected {
				t.Errorf("Opposite() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{DirNone, "none"},
	}

	for _, tc := range tests {
		if got := tc.dir.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
