package widget

import (
	"github.com/lixenwraith/loom/geom"
)

// ListView renders entries one per row with a highlighted row
// Scroll is the first visible entry index; rows are clipped to bounds
type ListView struct {
	Entries   []string
	Highlight int
	Scroll    int
}

// Layout renders visible entries
func (l ListView) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: geom.Rect{Row: b.Row, Col: b.Col, W: b.W}}
	if b.Empty() {
		return out
	}

	base := ctx.Theme.Base()
	base.Bg = ctx.Theme.ModalBg
	hi := ctx.Theme.Highlighted()

	rows := 0
	for y := 0; y < b.H; y++ {
		idx := l.Scroll + y
		if idx >= len(l.Entries) {
			break
		}
		st := base
		if idx == l.Highlight {
			st = hi
		}
		line := PadRight(Truncate(l.Entries[idx], b.W), b.W)
		i := 0
		for _, r := range line {
			if i >= b.W {
				break
			}
			out.Commands = append(out.Commands, Command{Row: b.Row + y, Col: b.Col + i, Rune: r, Style: st})
			i++
		}
		rows++
	}
	out.Bounds.H = rows
	return out
}

// ClampCursor keeps a cursor within [0, count)
func ClampCursor(cursor, count int) int {
	if count <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

// AdjustScroll updates scroll so the cursor stays visible
func AdjustScroll(cursor, scroll, visible, count int) int {
	if visible <= 0 {
		return 0
	}
	if cursor < scroll {
		scroll = cursor
	}
	if cursor >= scroll+visible {
		scroll = cursor - visible + 1
	}
	if scroll > count-visible {
		scroll = count - visible
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
