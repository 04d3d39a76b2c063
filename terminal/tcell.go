package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TcellTerminal adapts a tcell.Screen to the Writer and event contracts
// One goroutine polls tcell events and forwards decoded tokens on Events()
type TcellTerminal struct {
	screen tcell.Screen
	events chan Event

	cursorRow int
	cursorCol int
	style     tcell.Style
	styled    bool
}

// NewTcellTerminal allocates a terminal over a fresh tcell screen
func NewTcellTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellTerminal{
		screen: screen,
		events: make(chan Event, 16),
		style:  tcell.StyleDefault,
	}, nil
}

// Init enters raw mode and starts the event pump
func (t *TcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	go t.pump()
	return nil
}

// Fini restores the terminal state, safe to call multiple times
func (t *TcellTerminal) Fini() {
	t.screen.Fini()
}

// Size returns current terminal dimensions
func (t *TcellTerminal) Size() (width, height int) {
	return t.screen.Size()
}

// Events returns the decoded event stream
func (t *TcellTerminal) Events() <-chan Event {
	return t.events
}

// pump polls tcell and forwards decoded events until the screen closes
func (t *TcellTerminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.events <- Event{Type: EventClosed}
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			t.events <- decodeKey(tev)
		case *tcell.EventResize:
			w, h := tev.Size()
			t.events <- ResizeEvent(w, h)
		}
	}
}

// decodeKey translates a tcell key event into the token set
func decodeKey(ev *tcell.EventKey) Event {
	mod := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	case k == tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape, Mod: mod}
	case k == tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter, Mod: mod}
	case k == tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab, Mod: mod}
	case k == tcell.KeyBacktab:
		return Event{Type: EventKey, Key: KeyBacktab, Mod: mod}
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace, Mod: mod}
	case k == tcell.KeyDelete:
		return Event{Type: EventKey, Key: KeyDelete, Mod: mod}
	case k == tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp, Mod: mod}
	case k == tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown, Mod: mod}
	case k == tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft, Mod: mod}
	case k == tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight, Mod: mod}
	case k == tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome, Mod: mod}
	case k == tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd, Mod: mod}
	case k == tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp, Mod: mod}
	case k == tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown, Mod: mod}
	case k == tcell.KeyInsert:
		return Event{Type: EventKey, Key: KeyInsert, Mod: mod}
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return Event{Type: EventKey, Key: KeyF1 + Key(k-tcell.KeyF1), Mod: mod}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return Event{Type: EventKey, Key: KeyCtrlA + Key(k-tcell.KeyCtrlA), Mod: mod}
	}
	return Event{Type: EventKey, Key: KeyNone, Mod: mod}
}

// --- Writer implementation ---

// MoveCursor records the 1-based write position
func (t *TcellTerminal) MoveCursor(row, col int) {
	t.cursorRow = row
	t.cursorCol = col
}

// OpenStyle switches subsequent writes to the given appearance
func (t *TcellTerminal) OpenStyle(fg, bg RGB, attr Attr) {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))
	if attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	if attr&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if attr&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attr&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if attr&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	t.style = st
	t.styled = true
}

// WriteRune places the character at the cursor and advances one column
func (t *TcellTerminal) WriteRune(r rune) {
	if r == 0 {
		r = ' '
	}
	// tcell is 0-indexed
	t.screen.SetContent(t.cursorCol-1, t.cursorRow-1, r, nil, t.style)
	t.cursorCol++
}

// ResetStyle returns subsequent writes to the default appearance
func (t *TcellTerminal) ResetStyle() {
	t.style = tcell.StyleDefault
	t.styled = false
}

// Flush shows pending updates
func (t *TcellTerminal) Flush() error {
	t.screen.Show()
	return nil
}

// toTcellColor converts RGB to tcell.Color
func toTcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
