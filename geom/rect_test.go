package geom

import "testing"

// TestInsetNeverNegative verifies width and height clamp at zero
func TestInsetNeverNegative(t *testing.T) {
	rects := []Rect{
		NewRect(1, 1, 10, 5),
		NewRect(3, 7, 1, 1),
		NewRect(1, 1, 0, 0),
		NewRect(5, 5, 2, 8),
	}
	insets := []Insets{
		{},
		UniformInsets(1),
		UniformInsets(100),
		{Top: 3, Bottom: 3, Leading: 6, Trailing: 6},
		{Top: 0, Bottom: 9, Leading: 1, Trailing: 0},
	}

	for _, r := range rects {
		for _, in := range insets {
			got := r.Inset(in)
			if got.W < 0 || got.H < 0 {
				t.Errorf("Inset(%+v) of %+v produced negative size %+v", in, r, got)
			}
		}
	}
}

// TestInsetShiftsOrigin verifies origin moves by top/leading
func TestInsetShiftsOrigin(t *testing.T) {
	r := NewRect(2, 3, 10, 6)
	got := r.Inset(Insets{Top: 1, Bottom: 2, Leading: 2, Trailing: 1})

	want := NewRect(3, 5, 7, 3)
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

// TestMaxRowCol verifies the inclusive far edges
func TestMaxRowCol(t *testing.T) {
	r := NewRect(1, 1, 80, 24)
	if r.MaxRow() != 24 {
		t.Errorf("Expected MaxRow 24, got %d", r.MaxRow())
	}
	if r.MaxCol() != 80 {
		t.Errorf("Expected MaxCol 80, got %d", r.MaxCol())
	}
}

// TestArea verifies degenerate rects report zero area
func TestArea(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want int
	}{
		{"normal", NewRect(1, 1, 4, 3), 12},
		{"zero width", NewRect(1, 1, 0, 3), 0},
		{"negative height", NewRect(1, 1, 4, -2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Area(); got != tt.want {
				t.Errorf("Expected area %d, got %d", tt.want, got)
			}
		})
	}
}

// TestAlignedIn verifies edge pinning and centered floor division
func TestAlignedIn(t *testing.T) {
	container := NewRect(1, 1, 20, 10)
	inner := Rect{W: 5, H: 3}

	tests := []struct {
		name    string
		h       HAlign
		v       VAlign
		wantRow int
		wantCol int
	}{
		{"leading top", HLeading, VTop, 1, 1},
		{"trailing bottom", HTrailing, VBottom, 8, 16},
		{"center", HCenter, VCenter, 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inner.AlignedIn(container, tt.h, tt.v)
			if got.Row != tt.wantRow || got.Col != tt.wantCol {
				t.Errorf("Expected origin (%d,%d), got (%d,%d)", tt.wantRow, tt.wantCol, got.Row, got.Col)
			}
			if got.W != inner.W || got.H != inner.H {
				t.Errorf("Alignment changed size: %+v", got)
			}
		})
	}
}
