package widget

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/terminal"
)

// MenuEntry is one activatable row in a dropdown
type MenuEntry struct {
	Label string
	Rune  rune // Bound activation key, 0 = none
}

// MenuItem is one top-level menu bar item
// An item with no entries is inert: it renders but cannot open
type MenuItem struct {
	Title   string
	Rune    rune // Alt+Rune opens the item
	Entries []MenuEntry
}

// MenuBar renders top-level item titles on one row
// OpenIndex highlights the currently open item, -1 for none
type MenuBar struct {
	Items     []MenuItem
	OpenIndex int
}

// itemGap separates item titles on the bar
const itemGap = 2

// Layout renders " title " per item across the row
func (m MenuBar) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: geom.NewRect(b.Row, b.Col, b.W, minInt(1, b.H))}
	if b.Empty() {
		out.Bounds.H = 0
		return out
	}

	barStyle := style.Style{Fg: ctx.Theme.MenuFg, Bg: ctx.Theme.MenuBg}
	for col := b.Col; col <= b.MaxCol(); col++ {
		out.Commands = append(out.Commands, Command{Row: b.Row, Col: col, Rune: ' ', Style: barStyle})
	}

	col := b.Col + 1
	for i, item := range m.Items {
		title := " " + item.Title + " "
		st := barStyle
		if i == m.OpenIndex {
			st = ctx.Theme.Highlighted()
		}
		if len(item.Entries) == 0 {
			st.Fg = ctx.Theme.Disable
		}
		offset := 0
		for _, r := range title {
			if col+offset > b.MaxCol() {
				break
			}
			cs := st
			// Underline the activation key within the title
			if item.Rune != 0 && r == item.Rune && cs.Attr&terminal.AttrUnderline == 0 {
				cs.Attr |= terminal.AttrUnderline
			}
			out.Commands = append(out.Commands, Command{Row: b.Row, Col: col + offset, Rune: r, Style: cs})
			offset++
		}
		col += RuneLen(title) + itemGap
	}
	return out
}

// ItemBounds returns the rect covering item i's title on the bar row
// Anchored dropdowns position themselves relative to this rect
func (m MenuBar) ItemBounds(i int, bar geom.Rect) geom.Rect {
	col := bar.Col + 1
	for idx, item := range m.Items {
		w := RuneLen(item.Title) + 2
		if idx == i {
			return geom.NewRect(bar.Row, col, w, 1)
		}
		col += w + itemGap
	}
	return geom.Rect{Row: bar.Row, Col: bar.Col}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
