package widget

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
)

// StatusBar renders one row with left- and right-aligned text
// The right text wins when the two would collide
type StatusBar struct {
	Left  string
	Right string
}

// Layout fills the row and places both segments
func (s StatusBar) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: geom.NewRect(b.Row, b.Col, b.W, minInt(1, b.H))}
	if b.Empty() {
		out.Bounds.H = 0
		return out
	}

	st := style.Style{Fg: ctx.Theme.StatusFg, Bg: ctx.Theme.StatusBg}
	for col := b.Col; col <= b.MaxCol(); col++ {
		out.Commands = append(out.Commands, Command{Row: b.Row, Col: col, Rune: ' ', Style: st})
	}

	left := Truncate(s.Left, b.W)
	i := 0
	for _, r := range left {
		if b.Col+1+i > b.MaxCol() {
			break
		}
		out.Commands = append(out.Commands, Command{Row: b.Row, Col: b.Col + 1 + i, Rune: r, Style: st})
		i++
	}

	right := Truncate(s.Right, b.W)
	col := b.MaxCol() - RuneLen(right)
	if col < b.Col {
		col = b.Col
	}
	i = 0
	for _, r := range right {
		if col+i > b.MaxCol() {
			break
		}
		out.Commands = append(out.Commands, Command{Row: b.Row, Col: col + i, Rune: r, Style: st})
		i++
	}
	return out
}
