package widget

import (
	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
)

// Button is a labeled activation target padded with one cell each side
// It highlights when its focus ID is the snapshot's active ID, or when
// Active is forced by a modal controller's choice index
type Button struct {
	FocusID focus.ID
	Label   string
	Active  bool
}

// Layout renders " label " and reports the occupied width
func (b Button) Layout(ctx Context) Result {
	bounds := ctx.Bounds
	if bounds.Empty() {
		return Result{Bounds: geom.Rect{Row: bounds.Row, Col: bounds.Col}}
	}

	st := style.Style{Fg: ctx.Theme.ButtonFg, Bg: ctx.Theme.ButtonBg}
	if b.Active {
		st = ctx.Theme.Highlighted()
	} else if b.FocusID != "" && ctx.Focus.IsActive(b.FocusID) {
		// Focused but not activated: ring tint between base and highlight
		st = style.Style{Fg: ctx.Theme.HighlightFg, Bg: ctx.Theme.FocusRing()}
	}

	text := " " + b.Label + " "
	out := Result{}
	cols := 0
	for _, r := range text {
		if cols >= bounds.W {
			break
		}
		out.Commands = append(out.Commands, Command{
			Row:   bounds.Row,
			Col:   bounds.Col + cols,
			Rune:  r,
			Style: st,
		})
		cols++
	}
	out.Bounds = geom.NewRect(bounds.Row, bounds.Col, cols, 1)
	return out
}
