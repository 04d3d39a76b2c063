package modal

import (
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/widget"
)

// messageStyle is the body text style over the modal background
func messageStyle(sc *scene.Scene) style.Style {
	t := sc.Theme()
	return style.Style{Fg: t.Fg, Bg: t.ModalBg}
}

// buttonRow builds a horizontal row of buttons with the active one marked
func buttonRow(buttons []Choice, active int) widget.Widget {
	children := make([]widget.Erased, 0, len(buttons))
	for i, b := range buttons {
		children = append(children, widget.Erase(widget.Button{
			Label:  b.Label,
			Active: i == active,
		}))
	}
	return widget.HStack(children...).WithSpacing(1)
}

// buttonRowWidth returns the cells a button row occupies
func buttonRowWidth(buttons []Choice) int {
	w := 0
	for i, b := range buttons {
		if i > 0 {
			w++ // Spacing
		}
		w += widget.RuneLen(b.Label) + 2
	}
	return w
}
