package modal

import (
	"testing"

	"github.com/lixenwraith/loom/terminal"
)

// TestTextEntryEditingSequence types two characters, moves the caret
// left once, and deletes backward, checking text and caret each step
func TestTextEntryEditingSequence(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)
	c.Present("Name:", "", []Choice{{Label: "OK"}})

	c.Handle(terminal.RuneEvent('a'))
	c.Handle(terminal.RuneEvent('b'))
	if c.Value() != "ab" || c.Caret() != 2 {
		t.Errorf("Expected ab caret 2, got %q caret %d", c.Value(), c.Caret())
	}

	c.Handle(key(terminal.KeyLeft))
	if c.Caret() != 1 {
		t.Errorf("Expected caret 1 after left, got %d", c.Caret())
	}

	c.Handle(key(terminal.KeyBackspace))
	if c.Value() != "b" || c.Caret() != 0 {
		t.Errorf("Expected b caret 0, got %q caret %d", c.Value(), c.Caret())
	}
}

func TestTextEntryInitialValue(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)
	c.Present("Path:", "draft.txt", []Choice{{Label: "Save"}})

	if c.Value() != "draft.txt" {
		t.Errorf("Expected initial value, got %q", c.Value())
	}
	if c.Caret() != 9 {
		t.Errorf("Expected caret at end, got %d", c.Caret())
	}
}

// TestTextEntryValueReadableInAction verifies a button action can read
// the entered text before the controller clears its state
func TestTextEntryValueReadableInAction(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)

	var got string
	c.Present("Name:", "", []Choice{
		{Label: "OK", Action: func() { got = c.Value() }},
	})

	c.Handle(terminal.RuneEvent('h'))
	c.Handle(terminal.RuneEvent('i'))
	c.Handle(key(terminal.KeyEnter))

	if got != "hi" {
		t.Errorf("Expected action to read hi, got %q", got)
	}
	if c.Presenting() {
		t.Error("Expected idle after activation")
	}
}

func TestTextEntryTabCyclesButtons(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)
	c.Present("Pick:", "", []Choice{{Label: "A"}, {Label: "B"}})

	c.Handle(key(terminal.KeyTab))
	if c.index != 1 {
		t.Errorf("Expected index 1 after TAB, got %d", c.index)
	}
	c.Handle(key(terminal.KeyTab))
	if c.index != 0 {
		t.Errorf("Expected wrap to 0, got %d", c.index)
	}
}

func TestTextEntryRefusesEmptyButtons(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)

	if c.Present("Name:", "", nil) {
		t.Error("Expected present with no buttons to be refused")
	}
}

func TestTextEntryEscapeDiscardsInput(t *testing.T) {
	sc := testScene()
	c := NewTextEntryBoxController(sc)
	fired := false
	c.Present("Name:", "", []Choice{{Label: "OK", Action: func() { fired = true }}})

	c.Handle(terminal.RuneEvent('x'))
	c.Handle(key(terminal.KeyEscape))

	if fired {
		t.Error("Expected no action on ESC")
	}
	if c.Presenting() {
		t.Error("Expected idle after ESC")
	}
	if len(sc.Overlays()) != 0 {
		t.Errorf("Expected overlays restored, got %d", len(sc.Overlays()))
	}

	// Re-presenting resets the field
	c.Present("Name:", "", []Choice{{Label: "OK"}})
	if c.Value() != "" {
		t.Errorf("Expected fresh field on re-present, got %q", c.Value())
	}
}
