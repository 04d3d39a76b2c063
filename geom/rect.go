package geom

// Rect is a rectangular area in terminal cells
// Coordinates are 1-based with top-left origin
type Rect struct {
	Row, Col int
	W, H     int
}

// NewRect creates a rect from origin and dimensions
func NewRect(row, col, w, h int) Rect {
	return Rect{Row: row, Col: col, W: w, H: h}
}

// MaxRow returns the last row covered by the rect
func (r Rect) MaxRow() int {
	return r.Row + r.H - 1
}

// MaxCol returns the last column covered by the rect
func (r Rect) MaxCol() int {
	return r.Col + r.W - 1
}

// Area returns cell count, zero for degenerate rects
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Empty returns true if the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the 1-based cell lies inside the rect
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row <= r.MaxRow() && col >= r.Col && col <= r.MaxCol()
}

// Insets describes contraction amounts per edge
type Insets struct {
	Top, Bottom       int
	Leading, Trailing int
}

// UniformInsets returns equal insets on all edges
func UniformInsets(n int) Insets {
	return Insets{Top: n, Bottom: n, Leading: n, Trailing: n}
}

// Inset returns the rect contracted by the given insets
// Width and height clamp at zero, never negative
func (r Rect) Inset(in Insets) Rect {
	w := r.W - in.Leading - in.Trailing
	if w < 0 {
		w = 0
	}
	h := r.H - in.Top - in.Bottom
	if h < 0 {
		h = 0
	}
	return Rect{
		Row: r.Row + in.Top,
		Col: r.Col + in.Leading,
		W:   w,
		H:   h,
	}
}

// HAlign specifies horizontal alignment within a container
type HAlign uint8

const (
	HLeading HAlign = iota
	HCenter
	HTrailing
)

// VAlign specifies vertical alignment within a container
type VAlign uint8

const (
	VTop VAlign = iota
	VCenter
	VBottom
)

// AlignedIn returns the rect repositioned inside container per alignment
// Size is unchanged; center alignment floors the split remainder
func (r Rect) AlignedIn(container Rect, h HAlign, v VAlign) Rect {
	out := r
	switch h {
	case HLeading:
		out.Col = container.Col
	case HCenter:
		out.Col = container.Col + (container.W-r.W)/2
	case HTrailing:
		out.Col = container.MaxCol() - r.W + 1
	}
	switch v {
	case VTop:
		out.Row = container.Row
	case VCenter:
		out.Row = container.Row + (container.H-r.H)/2
	case VBottom:
		out.Row = container.MaxRow() - r.H + 1
	}
	return out
}
