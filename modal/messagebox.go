package modal

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

// MessageBoxController presents a centered title/message/button dialog
// Created once, reused across presentations
type MessageBoxController struct {
	sc *scene.Scene
	session

	title   string
	lines   []string
	buttons []Choice
	index   int
}

// NewMessageBoxController creates an idle controller bound to a scene
func NewMessageBoxController(sc *scene.Scene) *MessageBoxController {
	return &MessageBoxController{sc: sc}
}

// Presenting reports whether a dialog is up
func (c *MessageBoxController) Presenting() bool {
	return c.active
}

// Present opens the dialog; refused when buttons is empty
// A modal with no activatable choice is never shown
func (c *MessageBoxController) Present(title string, lines []string, buttons []Choice) bool {
	if len(buttons) == 0 {
		return false
	}
	if !c.active {
		c.begin(c.sc)
	}
	c.title = title
	c.lines = append([]string(nil), lines...)
	c.buttons = append([]Choice(nil), buttons...)
	c.index = 0
	c.represent()
	return true
}

// Dismiss restores the pre-present overlays and focus
func (c *MessageBoxController) Dismiss() {
	if !c.active {
		return
	}
	c.end(c.sc)
	c.title = ""
	c.lines = nil
	c.buttons = nil
	c.index = 0
}

// Handle consumes navigation and activation tokens while presenting
func (c *MessageBoxController) Handle(ev terminal.Event) bool {
	if !c.active || ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape:
		c.Dismiss()
		return true
	case terminal.KeyTab, terminal.KeyRight:
		c.index = cycle(c.index, 1, len(c.buttons))
		c.represent()
		return true
	case terminal.KeyBacktab, terminal.KeyLeft:
		c.index = cycle(c.index, -1, len(c.buttons))
		c.represent()
		return true
	case terminal.KeyEnter:
		c.activate(c.buttons[c.index])
		return true
	case terminal.KeyRune:
		for _, b := range c.buttons {
			if b.Rune != 0 && b.Rune == ev.Rune {
				c.activate(b)
				return true
			}
		}
	}
	return false
}

// activate dismisses first so the action can present a follow-up modal
// over the restored state, then runs the choice's handler
func (c *MessageBoxController) activate(choice Choice) {
	action := choice.Action
	c.Dismiss()
	if action != nil {
		action()
	}
}

// represent rebuilds the overlay so the highlight reflects the index
func (c *MessageBoxController) represent() {
	viewport := c.sc.Viewport()

	contentW := widget.RuneLen(c.title)
	for _, line := range c.lines {
		if n := widget.RuneLen(line); n > contentW {
			contentW = n
		}
	}
	if n := buttonRowWidth(c.buttons); n > contentW {
		contentW = n
	}

	w := contentW + 4 // Border plus one padding cell each side
	h := len(c.lines) + 4
	bounds := centeredBounds(viewport, w, h)

	c.present(c.sc, scene.Overlay{
		Bounds:  bounds,
		Content: widget.Erase(c.body()),
	})
}

// body builds the dialog widget tree for the current state
func (c *MessageBoxController) body() widget.Widget {
	var rows []widget.Erased
	for _, line := range c.lines {
		rows = append(rows, widget.Erase(widget.Text{Content: line, Style: messageStyle(c.sc)}))
	}
	rows = append(rows, widget.Erase(widget.Text{Content: ""}))
	rows = append(rows, widget.Erase(buttonRow(c.buttons, c.index)))

	return widget.Frame{
		Title: c.title,
		Line:  widget.LineDouble,
		Child: widget.Erase(widget.Padding{
			Insets: geom.Insets{Leading: 1, Trailing: 1},
			Child:  widget.Erase(widget.VStack(rows...)),
		}),
	}
}
