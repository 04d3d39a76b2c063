package widget

import (
	"testing"

	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/terminal"
)

func TestTextFieldInsertAndDelete(t *testing.T) {
	s := NewTextFieldState("")

	s.Insert('a')
	s.Insert('b')
	if s.Value() != "ab" || s.Caret != 2 {
		t.Errorf("Expected ab caret 2, got %q caret %d", s.Value(), s.Caret)
	}

	s.MoveLeft()
	if s.Caret != 1 {
		t.Errorf("Expected caret 1 after left, got %d", s.Caret)
	}

	s.DeleteBackward()
	if s.Value() != "b" || s.Caret != 0 {
		t.Errorf("Expected b caret 0, got %q caret %d", s.Value(), s.Caret)
	}

	if s.DeleteBackward() {
		t.Error("Expected delete at start to report no change")
	}
}

func TestTextFieldInsertMidText(t *testing.T) {
	s := NewTextFieldState("ac")
	s.MoveLeft()
	s.Insert('b')
	if s.Value() != "abc" || s.Caret != 2 {
		t.Errorf("Expected abc caret 2, got %q caret %d", s.Value(), s.Caret)
	}
}

func TestTextFieldDeleteForward(t *testing.T) {
	s := NewTextFieldState("abc")
	s.MoveToStart()

	if !s.DeleteForward() {
		t.Error("Expected delete forward to report a change")
	}
	if s.Value() != "bc" || s.Caret != 0 {
		t.Errorf("Expected bc caret 0, got %q caret %d", s.Value(), s.Caret)
	}

	s.MoveToEnd()
	if s.DeleteForward() {
		t.Error("Expected delete forward at end to report no change")
	}
}

func TestTextFieldWordOps(t *testing.T) {
	s := NewTextFieldState("hello world")

	s.MoveWordLeft()
	if s.Caret != 6 {
		t.Errorf("Expected caret 6 at word start, got %d", s.Caret)
	}

	s.MoveToEnd()
	s.DeleteWordBackward()
	if s.Value() != "hello " {
		t.Errorf("Expected %q, got %q", "hello ", s.Value())
	}

	s.DeleteWordBackward()
	if s.Value() != "" || s.Caret != 0 {
		t.Errorf("Expected empty text, got %q caret %d", s.Value(), s.Caret)
	}
}

func TestTextFieldHandleKey(t *testing.T) {
	s := NewTextFieldState("ab")

	if !s.HandleKey(terminal.KeyEvent(terminal.KeyLeft, 0, 0)) {
		t.Error("Expected left arrow handled")
	}
	if s.Caret != 1 {
		t.Errorf("Expected caret 1, got %d", s.Caret)
	}

	if !s.HandleKey(terminal.RuneEvent('x')) {
		t.Error("Expected printable rune handled")
	}
	if s.Value() != "axb" {
		t.Errorf("Expected axb, got %q", s.Value())
	}

	if !s.HandleKey(terminal.KeyEvent(terminal.KeyHome, 0, 0)) {
		t.Error("Expected home handled")
	}
	if s.Caret != 0 {
		t.Errorf("Expected caret 0, got %d", s.Caret)
	}

	if s.HandleKey(terminal.KeyEvent(terminal.KeyEnter, 0, 0)) {
		t.Error("Expected enter unhandled")
	}
}

func TestTextFieldScrollFollowsCaret(t *testing.T) {
	s := NewTextFieldState("abcdefghij")

	s.AdjustScroll(5)
	if s.Scroll != 6 {
		t.Errorf("Expected scroll 6 to show caret at end, got %d", s.Scroll)
	}

	s.MoveToStart()
	s.AdjustScroll(5)
	if s.Scroll != 0 {
		t.Errorf("Expected scroll 0 after home, got %d", s.Scroll)
	}
}

func TestTextFieldRendersCaretCell(t *testing.T) {
	s := NewTextFieldState("ab")
	s.Caret = 1
	f := TextField{State: s}

	res := f.Layout(testContext(geom.NewRect(2, 3, 6, 1)))

	if len(res.Commands) != 6 {
		t.Fatalf("Expected 6 commands, got %d", len(res.Commands))
	}
	caretCmd := res.Commands[1]
	if caretCmd.Rune != 'b' {
		t.Errorf("Expected caret over b, got %q", caretCmd.Rune)
	}
	if caretCmd.Style == res.Commands[0].Style {
		t.Error("Expected caret cell styled differently from plain text")
	}
}
