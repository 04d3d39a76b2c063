// Package surface implements the retained framebuffer and its minimal-diff
// computation. Two row-major tile grids are kept: the frame being drawn and
// the previously presented one. Diff returns only the cells that changed,
// except after a resize or on the first frame, where every cell is reported.
package surface

import "github.com/lixenwraith/loom/style"

// Tile is one character cell plus its display attributes
type Tile struct {
	Rune  rune
	Style style.Style
}

// Blank is the background tile for cleared cells
var Blank = Tile{Rune: ' '}

// Change is one cell whose tile differs from the previous frame
// Coordinates are 1-based
type Change struct {
	Row, Col int
	Tile     Tile
}

// Surface is the width*height tile grid plus the previous frame's grid
// Both grids always have equal length except transiently during a resize,
// which raises the full-refresh flag until the next diff
type Surface struct {
	cells  []Tile
	prev   []Tile
	width  int
	height int

	fullRefresh bool
}

// New creates a surface of the given dimensions, pending a full refresh
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Width returns the current grid width
func (s *Surface) Width() int {
	return s.width
}

// Height returns the current grid height
func (s *Surface) Height() int {
	return s.height
}

// Resize reallocates both grids blank and raises the full-refresh flag
// Old cell contents are not remapped across a resize
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	s.cells = make([]Tile, size)
	s.prev = make([]Tile, size)
	for i := range s.cells {
		s.cells[i] = Blank
		s.prev[i] = Blank
	}
	s.width = width
	s.height = height
	s.fullRefresh = true
}

// BeginFrame copies the current grid into the previous slot
// Call before any widget draws into the frame
func (s *Surface) BeginFrame() {
	copy(s.prev, s.cells)
}

// Clear overwrites every cell with the given tile
// Called once per frame so uncovered regions revert to background
func (s *Surface) Clear(t Tile) {
	for i := range s.cells {
		s.cells[i] = t
	}
}

// Set writes one tile at the 1-based position
// Out-of-range coordinates are a no-op
func (s *Surface) Set(t Tile, row, col int) {
	if row < 1 || row > s.height || col < 1 || col > s.width {
		return
	}
	s.cells[(row-1)*s.width+(col-1)] = t
}

// Get reads the tile at the 1-based position, blank outside the grid
func (s *Surface) Get(row, col int) Tile {
	if row < 1 || row > s.height || col < 1 || col > s.width {
		return Blank
	}
	return s.cells[(row-1)*s.width+(col-1)]
}

// Diff returns the cells whose tile differs from the previous frame,
// row-major, 1-based. With the full-refresh flag pending it clears the
// flag and reports every cell. O(width*height) per frame by design.
func (s *Surface) Diff() []Change {
	if s.fullRefresh {
		s.fullRefresh = false
		out := make([]Change, 0, len(s.cells))
		for i, t := range s.cells {
			out = append(out, Change{
				Row:  i/s.width + 1,
				Col:  i%s.width + 1,
				Tile: t,
			})
		}
		return out
	}

	var out []Change
	for i, t := range s.cells {
		if t == s.prev[i] {
			continue
		}
		out = append(out, Change{
			Row:  i/s.width + 1,
			Col:  i%s.width + 1,
			Tile: t,
		})
	}
	return out
}
