package modal

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

// MenuAction is invoked with the item and entry index of the activated entry
type MenuAction func(item, entry int)

// MenuController drives the menu bar and its anchored dropdowns
// Alt+<item rune> opens a dropdown below the item; left/right cycle
// between items with entries; escape closes and restores focus.
type MenuController struct {
	sc *scene.Scene
	session

	items    []widget.MenuItem
	onSelect MenuAction
	barRow   geom.Rect

	open      int // Open item index while presenting
	highlight int

	// Last open item and its highlight, preserved across presentations
	lastOpen      int
	lastHighlight int
}

// NewMenuController creates an idle controller for the given items
func NewMenuController(sc *scene.Scene, items []widget.MenuItem, onSelect MenuAction) *MenuController {
	return &MenuController{
		sc:       sc,
		items:    items,
		onSelect: onSelect,
		open:     -1,
		lastOpen: -1,
	}
}

// Bar returns the menu bar widget reflecting the open state
// Place it in the scaffold's menu slot
func (c *MenuController) Bar() widget.MenuBar {
	open := -1
	if c.active {
		open = c.open
	}
	return widget.MenuBar{Items: c.items, OpenIndex: open}
}

// SetBarBounds records where the bar was laid out, for dropdown anchoring
func (c *MenuController) SetBarBounds(r geom.Rect) {
	c.barRow = r
}

// Presenting reports whether a dropdown is open
func (c *MenuController) Presenting() bool {
	return c.active
}

// Present opens item i's dropdown; refused for inert items
// Re-opening the last open item preserves its previous highlight
func (c *MenuController) Present(i int) bool {
	if i < 0 || i >= len(c.items) || len(c.items[i].Entries) == 0 {
		return false
	}
	if !c.active {
		c.begin(c.sc)
	}
	c.openItem(i)
	return true
}

// Dismiss closes the dropdown and restores overlays and focus
func (c *MenuController) Dismiss() {
	if !c.active {
		return
	}
	c.end(c.sc)
	c.open = -1
	c.highlight = 0
}

// Handle consumes activation keys while idle and navigation while open
func (c *MenuController) Handle(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}

	if !c.active {
		// Alt+rune bound to an item opens its dropdown
		if ev.Key == terminal.KeyRune && ev.Mod&terminal.ModAlt != 0 {
			for i, item := range c.items {
				if item.Rune != 0 && item.Rune == ev.Rune {
					return c.Present(i)
				}
			}
		}
		return false
	}

	entries := c.items[c.open].Entries
	switch ev.Key {
	case terminal.KeyEscape:
		c.Dismiss()
		return true
	case terminal.KeyDown:
		c.highlight = cycle(c.highlight, 1, len(entries))
		c.remember()
		c.represent()
		return true
	case terminal.KeyUp:
		c.highlight = cycle(c.highlight, -1, len(entries))
		c.remember()
		c.represent()
		return true
	case terminal.KeyRight:
		if next := c.nextOpenable(c.open, 1); next >= 0 {
			c.openItem(next)
		}
		return true
	case terminal.KeyLeft:
		if next := c.nextOpenable(c.open, -1); next >= 0 {
			c.openItem(next)
		}
		return true
	case terminal.KeyEnter:
		c.activate(c.open, c.highlight)
		return true
	case terminal.KeyRune:
		for j, e := range entries {
			if e.Rune != 0 && e.Rune == ev.Rune {
				c.activate(c.open, j)
				return true
			}
		}
	}
	return false
}

// activate dismisses, then reports the selection to the host
func (c *MenuController) activate(item, entry int) {
	action := c.onSelect
	c.Dismiss()
	if action != nil {
		action(item, entry)
	}
}

// openItem switches the dropdown to item i
// A different item resets the highlight; the same item restores it,
// clamped to the current entry count
func (c *MenuController) openItem(i int) {
	if i == c.lastOpen {
		c.highlight = widget.ClampCursor(c.lastHighlight, len(c.items[i].Entries))
	} else {
		c.highlight = 0
	}
	c.open = i
	c.remember()
	c.represent()
}

// remember records the open item and highlight for later re-opening
func (c *MenuController) remember() {
	c.lastOpen = c.open
	c.lastHighlight = c.highlight
}

// nextOpenable finds the next item with entries in the given direction,
// or -1 when the open item is the only one
func (c *MenuController) nextOpenable(from, dir int) int {
	n := len(c.items)
	for step := 1; step < n; step++ {
		i := ((from+dir*step)%n + n) % n
		if len(c.items[i].Entries) > 0 {
			return i
		}
	}
	return -1
}

// represent rebuilds the dropdown overlay anchored under the open item
func (c *MenuController) represent() {
	viewport := c.sc.Viewport()
	barRow := c.barRow
	if barRow.Empty() {
		// Default anchor row: the scaffold's menu row at the viewport top
		barRow = geom.NewRect(viewport.Row, viewport.Col, viewport.W, 1)
	}
	anchor := c.Bar().ItemBounds(c.open, barRow)

	entries := c.items[c.open].Entries
	contentW := 0
	for _, e := range entries {
		if n := widget.RuneLen(e.Label); n > contentW {
			contentW = n
		}
	}

	w := contentW + 4
	h := len(entries) + 2
	bounds := anchoredBounds(viewport, anchor, w, h)

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}

	c.present(c.sc, scene.Overlay{
		Bounds: bounds,
		Content: widget.Erase(widget.Frame{
			Line: widget.LineSingle,
			Child: widget.Erase(widget.Padding{
				Insets: geom.Insets{Leading: 1, Trailing: 1},
				Child: widget.Erase(widget.ListView{
					Entries:   labels,
					Highlight: c.highlight,
				}),
			}),
		}),
	})
}
