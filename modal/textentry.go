package modal

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/terminal"
	"github.com/lixenwraith/loom/widget"
)

// TextEntryBoxController presents a centered prompt with an editable
// single-line field and a button row. Cursor keys move the caret; TAB
// cycles the buttons; printable tokens insert at the caret.
type TextEntryBoxController struct {
	sc *scene.Scene
	session

	prompt  string
	field   *widget.TextFieldState
	buttons []Choice
	index   int
}

// NewTextEntryBoxController creates an idle controller bound to a scene
func NewTextEntryBoxController(sc *scene.Scene) *TextEntryBoxController {
	return &TextEntryBoxController{sc: sc}
}

// Presenting reports whether the box is up
func (c *TextEntryBoxController) Presenting() bool {
	return c.active
}

// Value returns the current text
// The field survives dismissal so button actions invoked by activation
// can still read it; the next Present resets it
func (c *TextEntryBoxController) Value() string {
	if c.field == nil {
		return ""
	}
	return c.field.Value()
}

// Caret returns the current caret position
func (c *TextEntryBoxController) Caret() int {
	if c.field == nil {
		return 0
	}
	return c.field.Caret
}

// Present opens the box; refused when buttons is empty
func (c *TextEntryBoxController) Present(prompt, initial string, buttons []Choice) bool {
	if len(buttons) == 0 {
		return false
	}
	if !c.active {
		c.begin(c.sc)
	}
	c.prompt = prompt
	c.field = widget.NewTextFieldState(initial)
	c.buttons = append([]Choice(nil), buttons...)
	c.index = 0
	c.represent()
	return true
}

// Dismiss restores the pre-present overlays and focus
func (c *TextEntryBoxController) Dismiss() {
	if !c.active {
		return
	}
	c.end(c.sc)
	c.prompt = ""
	c.buttons = nil
	c.index = 0
}

// Handle consumes editing, navigation, and activation tokens
func (c *TextEntryBoxController) Handle(ev terminal.Event) bool {
	if !c.active || ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape:
		c.Dismiss()
		return true
	case terminal.KeyTab:
		c.index = cycle(c.index, 1, len(c.buttons))
		c.represent()
		return true
	case terminal.KeyBacktab:
		c.index = cycle(c.index, -1, len(c.buttons))
		c.represent()
		return true
	case terminal.KeyEnter:
		action := c.buttons[c.index].Action
		c.Dismiss()
		if action != nil {
			action()
		}
		return true
	}
	// Everything else edits the field: cursor keys move the caret,
	// backspace/delete remove before it, printable runes insert
	if c.field.HandleKey(ev) {
		c.represent()
		return true
	}
	return false
}

// represent rebuilds the overlay for the current field and button state
func (c *TextEntryBoxController) represent() {
	viewport := c.sc.Viewport()

	contentW := widget.RuneLen(c.prompt)
	if n := buttonRowWidth(c.buttons); n > contentW {
		contentW = n
	}
	if contentW < 24 {
		contentW = 24 // Keep the field usable for short prompts
	}

	w := contentW + 4
	h := 6 // Border, prompt, field, blank, buttons
	bounds := centeredBounds(viewport, w, h)

	body := widget.VStack(
		widget.Erase(widget.Text{Content: c.prompt, Style: messageStyle(c.sc)}),
		widget.Erase(widget.TextField{State: c.field}),
		widget.Erase(widget.Text{Content: ""}),
		widget.Erase(buttonRow(c.buttons, c.index)),
	)

	c.present(c.sc, scene.Overlay{
		Bounds: bounds,
		Content: widget.Erase(widget.Frame{
			Title: "",
			Line:  widget.LineSingle,
			Child: widget.Erase(widget.Padding{
				Insets: geom.Insets{Leading: 1, Trailing: 1},
				Child:  widget.Erase(body),
			}),
		}),
	})
}
