package buffer

import "testing"

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 1}, Point{0, 2}, -1},
		{Point{1, 0}, Point{0, 9}, 1},
		{Point{2, 3}, Point{2, 3}, 0},
		{Point{1, 5}, Point{2, 0}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointBeforeAfter(t *testing.T) {
	a := Point{Line: 1, Column: 2}
	b := Point{Line: 1, Column: 3}
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is inconsistent")
	}
}

func TestPointMinMax(t *testing.T) {
	a := Point{Line: 0, Column: 5}
	b := Point{Line: 1, Column: 0}
	if MinPoint(a, b) != a {
		t.Error("MinPoint should pick the earlier point")
	}
	if MaxPoint(a, b) != b {
		t.Error("MaxPoint should pick the later point")
	}
}

func TestPointIsZero(t *testing.T) {
	if !(Point{}).IsZero() {
		t.Error("zero point should report zero")
	}
	if (Point{Line: 0, Column: 1}).IsZero() {
		t.Error("non-zero point should not report zero")
	}
}
