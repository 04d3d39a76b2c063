package terminal

// RGB is a 24-bit color value
type RGB struct {
	R, G, B uint8
}

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// EventType discriminates terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
	EventError
)

// Event is one decoded terminal event
// Key events carry Key/Rune/Mod, resize events carry Width/Height
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Mod    Modifier
	Width  int
	Height int
	Err    error
}

// KeyEvent builds a key event for the given token
func KeyEvent(key Key, r rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: key, Rune: r, Mod: mod}
}

// RuneEvent builds a printable-character event
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a resize event
func ResizeEvent(w, h int) Event {
	return Event{Type: EventResize, Width: w, Height: h}
}
