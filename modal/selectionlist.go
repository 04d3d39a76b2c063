package modal

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

// SelectionListController presents a centered list of choices
// Up/down move the highlight, return activates it
type SelectionListController struct {
	sc *scene.Scene
	session

	title   string
	entries []Choice
	index   int
	scroll  int
}

// NewSelectionListController creates an idle controller bound to a scene
func NewSelectionListController(sc *scene.Scene) *SelectionListController {
	return &SelectionListController{sc: sc}
}

// Presenting reports whether the list is up
func (c *SelectionListController) Presenting() bool {
	return c.active
}

// Present opens the list; refused when entries is empty
func (c *SelectionListController) Present(title string, entries []Choice) bool {
	if len(entries) == 0 {
		return false
	}
	if !c.active {
		c.begin(c.sc)
	}
	c.title = title
	c.entries = append([]Choice(nil), entries...)
	c.index = 0
	c.scroll = 0
	c.represent()
	return true
}

// Dismiss restores the pre-present overlays and focus
func (c *SelectionListController) Dismiss() {
	if !c.active {
		return
	}
	c.end(c.sc)
	c.title = ""
	c.entries = nil
	c.index = 0
	c.scroll = 0
}

// Handle consumes navigation and activation tokens while presenting
func (c *SelectionListController) Handle(ev terminal.Event) bool {
	if !c.active || ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape:
		c.Dismiss()
		return true
	case terminal.KeyDown, terminal.KeyTab:
		c.index = cycle(c.index, 1, len(c.entries))
		c.represent()
		return true
	case terminal.KeyUp, terminal.KeyBacktab:
		c.index = cycle(c.index, -1, len(c.entries))
		c.represent()
		return true
	case terminal.KeyEnter:
		entry := c.entries[c.index]
		action := entry.Action
		c.Dismiss()
		if action != nil {
			action()
		}
		return true
	case terminal.KeyRune:
		for _, e := range c.entries {
			if e.Rune != 0 && e.Rune == ev.Rune {
				action := e.Action
				c.Dismiss()
				if action != nil {
					action()
				}
				return true
			}
		}
	}
	return false
}

// represent rebuilds the overlay for the current highlight
func (c *SelectionListController) represent() {
	viewport := c.sc.Viewport()

	contentW := widget.RuneLen(c.title)
	for _, e := range c.entries {
		if n := widget.RuneLen(e.Label); n > contentW {
			contentW = n
		}
	}

	w := contentW + 4
	h := len(c.entries) + 2 // Border rows
	bounds := centeredBounds(viewport, w, h)

	visible := bounds.H - 2
	c.scroll = widget.AdjustScroll(c.index, c.scroll, visible, len(c.entries))

	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}

	c.present(c.sc, scene.Overlay{
		Bounds: bounds,
		Content: widget.Erase(widget.Frame{
			Title: c.title,
			Line:  widget.LineSingle,
			Child: widget.Erase(widget.Padding{
				Insets: geom.Insets{Leading: 1, Trailing: 1},
				Child: widget.Erase(widget.ListView{
					Entries:   labels,
					Highlight: c.index,
					Scroll:    c.scroll,
				}),
			}),
		}),
	})
}
