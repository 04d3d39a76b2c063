package widget

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Frame draws a border with an optional centered title on the top edge,
// fills the interior, and lays out its child inside the border
type Frame struct {
	Title string
	Line  LineType
	Child Erased
}

// Layout draws the box and delegates the interior to the child
func (f Frame) Layout(ctx Context) Result {
	b := ctx.Bounds
	if b.W < 2 || b.H < 2 {
		return Result{Bounds: geom.Rect{Row: b.Row, Col: b.Col}}
	}

	line := f.Line
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	borderStyle := style.Style{Fg: ctx.Theme.Border, Bg: ctx.Theme.ModalBg}
	fill := style.Style{Fg: ctx.Theme.Fg, Bg: ctx.Theme.ModalBg}

	out := Result{Bounds: b}

	// Interior fill so the frame fully covers whatever is beneath it
	for row := b.Row + 1; row < b.MaxRow(); row++ {
		for col := b.Col + 1; col < b.MaxCol(); col++ {
			out.Commands = append(out.Commands, Command{Row: row, Col: col, Rune: ' ', Style: fill})
		}
	}

	// Corners
	out.Commands = append(out.Commands,
		Command{Row: b.Row, Col: b.Col, Rune: chars[boxTL], Style: borderStyle},
		Command{Row: b.Row, Col: b.MaxCol(), Rune: chars[boxTR], Style: borderStyle},
		Command{Row: b.MaxRow(), Col: b.Col, Rune: chars[boxBL], Style: borderStyle},
		Command{Row: b.MaxRow(), Col: b.MaxCol(), Rune: chars[boxBR], Style: borderStyle},
	)

	// Horizontal edges
	for col := b.Col + 1; col < b.MaxCol(); col++ {
		out.Commands = append(out.Commands,
			Command{Row: b.Row, Col: col, Rune: chars[boxH], Style: borderStyle},
			Command{Row: b.MaxRow(), Col: col, Rune: chars[boxH], Style: borderStyle},
		)
	}

	// Vertical edges
	for row := b.Row + 1; row < b.MaxRow(); row++ {
		out.Commands = append(out.Commands,
			Command{Row: row, Col: b.Col, Rune: chars[boxV], Style: borderStyle},
			Command{Row: row, Col: b.MaxCol(), Rune: chars[boxV], Style: borderStyle},
		)
	}

	// Title centered on top edge
	if f.Title != "" && b.W > 4 {
		title := " " + Truncate(f.Title, b.W-4) + " "
		col := b.Col + (b.W-RuneLen(title))/2
		titleStyle := style.Style{Fg: ctx.Theme.Title, Bg: ctx.Theme.ModalBg, Attr: terminal.AttrBold}
		i := 0
		for _, r := range title {
			out.Commands = append(out.Commands, Command{Row: b.Row, Col: col + i, Rune: r, Style: titleStyle})
			i++
		}
	}

	inner := b.Inset(geom.UniformInsets(1))
	out.Children = append(out.Children, f.Child.Layout(ctx.WithBounds(inner)))
	return out
}
