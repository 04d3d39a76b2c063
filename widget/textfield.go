package widget

import (
	"unicode"

	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/terminal"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable single-line text state
// The caret is always clamped to [0, len(Text)] after every mutation
type TextFieldState struct {
	Text   []rune
	Caret  int // Position before which the caret sits, 0 = before first char
	Scroll int // First visible rune index
}

// NewTextFieldState creates initialized text field state
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:  runes,
		Caret: len(runes),
	}
}

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves the caret to the end
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Caret = len(t.Text)
	t.Scroll = 0
}

// Insert adds a rune at the caret and advances it
func (t *TextFieldState) Insert(r rune) {
	t.Text = append(t.Text[:t.Caret], append([]rune{r}, t.Text[t.Caret:]...)...)
	t.Caret++
}

// InsertString adds a string at the caret
func (t *TextFieldState) InsertString(s string) {
	runes := []rune(s)
	t.Text = append(t.Text[:t.Caret], append(runes, t.Text[t.Caret:]...)...)
	t.Caret += len(runes)
}

// DeleteBackward removes the rune immediately before the caret, clamped at zero
func (t *TextFieldState) DeleteBackward() bool {
	if t.Caret > 0 {
		t.Text = append(t.Text[:t.Caret-1], t.Text[t.Caret:]...)
		t.Caret--
		return true
	}
	return false
}

// DeleteForward removes the rune at the caret, clamped at the end
func (t *TextFieldState) DeleteForward() bool {
	if t.Caret < len(t.Text) {
		t.Text = append(t.Text[:t.Caret], t.Text[t.Caret+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes the word before the caret
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Caret == 0 {
		return false
	}
	end := t.Caret
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Caret {
		start = t.Caret - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Caret:]...)
	t.Caret = start
	return true
}

// MoveLeft moves the caret left
func (t *TextFieldState) MoveLeft() {
	if t.Caret > 0 {
		t.Caret--
	}
}

// MoveRight moves the caret right
func (t *TextFieldState) MoveRight() {
	if t.Caret < len(t.Text) {
		t.Caret++
	}
}

// MoveWordLeft moves the caret to the previous word boundary
func (t *TextFieldState) MoveWordLeft() {
	for t.Caret > 0 && !isWordChar(t.Text[t.Caret-1]) {
		t.Caret--
	}
	for t.Caret > 0 && isWordChar(t.Text[t.Caret-1]) {
		t.Caret--
	}
}

// MoveWordRight moves the caret to the next word boundary
func (t *TextFieldState) MoveWordRight() {
	for t.Caret < len(t.Text) && isWordChar(t.Text[t.Caret]) {
		t.Caret++
	}
	for t.Caret < len(t.Text) && !isWordChar(t.Text[t.Caret]) {
		t.Caret++
	}
}

// MoveToStart moves the caret to the beginning
func (t *TextFieldState) MoveToStart() {
	t.Caret = 0
}

// MoveToEnd moves the caret past the last rune
func (t *TextFieldState) MoveToEnd() {
	t.Caret = len(t.Text)
}

// AdjustScroll updates scroll to keep the caret visible within the viewport
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Caret < t.Scroll {
		t.Scroll = t.Caret
	}
	if t.Caret >= t.Scroll+viewportW {
		t.Scroll = t.Caret - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey processes an editing token, returns true if state changed
func (t *TextFieldState) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyLeft:
		if ev.Mod&terminal.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case terminal.KeyRight:
		if ev.Mod&terminal.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case terminal.KeyHome, terminal.KeyCtrlA:
		t.MoveToStart()
		return true
	case terminal.KeyEnd, terminal.KeyCtrlE:
		t.MoveToEnd()
		return true
	case terminal.KeyBackspace:
		if ev.Mod&terminal.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case terminal.KeyDelete:
		return t.DeleteForward()
	case terminal.KeyCtrlW:
		return t.DeleteWordBackward()
	case terminal.KeyRune:
		if ev.Rune >= 32 { // Printable
			t.Insert(ev.Rune)
			return true
		}
	}
	return false
}

// TextField renders a TextFieldState on one row with a visible caret cell
type TextField struct {
	State *TextFieldState
}

// Layout renders the visible window of the text with the caret highlighted
func (f TextField) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: geom.NewRect(b.Row, b.Col, b.W, minInt(1, b.H))}
	if b.Empty() || f.State == nil {
		out.Bounds = geom.Rect{Row: b.Row, Col: b.Col}
		return out
	}

	f.State.AdjustScroll(b.W)
	base := style.Style{Fg: ctx.Theme.Fg, Bg: ctx.Theme.InputBg}
	caret := style.Style{Fg: ctx.Theme.HighlightFg, Bg: ctx.Theme.HighlightBg}

	for x := 0; x < b.W; x++ {
		idx := f.State.Scroll + x
		r := ' '
		if idx < len(f.State.Text) {
			r = f.State.Text[idx]
		}
		st := base
		if idx == f.State.Caret {
			st = caret
		}
		out.Commands = append(out.Commands, Command{Row: b.Row, Col: b.Col + x, Rune: r, Style: st})
	}
	return out
}
