package terminal

import (
	"bufio"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
)

var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
)

// AnsiWriter implements Writer by emitting CSI sequences to an io.Writer
// Style state is coalesced so repeated identical styles emit nothing
type AnsiWriter struct {
	w *bufio.Writer

	cursorRow   int
	cursorCol   int
	cursorValid bool

	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
	styled    bool
}

// NewAnsiWriter creates a buffered ANSI writer
func NewAnsiWriter(w io.Writer) *AnsiWriter {
	return &AnsiWriter{
		w: bufio.NewWriterSize(w, 131072), // 128KB buffer
	}
}

// MoveCursor emits CUP unless the cursor is already there
func (a *AnsiWriter) MoveCursor(row, col int) {
	if a.cursorValid && row == a.cursorRow && col == a.cursorCol {
		return
	}
	a.w.Write(csi)
	a.w.WriteString(strconv.Itoa(row))
	a.w.WriteByte(';')
	a.w.WriteString(strconv.Itoa(col))
	a.w.WriteByte('H')
	a.cursorRow = row
	a.cursorCol = col
	a.cursorValid = true
}

// OpenStyle emits a combined SGR sequence when the style actually changes
func (a *AnsiWriter) OpenStyle(fg, bg RGB, attr Attr) {
	if a.lastValid && a.styled && fg == a.lastFg && bg == a.lastBg && attr == a.lastAttr {
		return
	}
	a.w.Write(csi)
	a.w.WriteByte('0')
	if attr&AttrBold != 0 {
		a.w.WriteString(";1")
	}
	if attr&AttrDim != 0 {
		a.w.WriteString(";2")
	}
	if attr&AttrItalic != 0 {
		a.w.WriteString(";3")
	}
	if attr&AttrUnderline != 0 {
		a.w.WriteString(";4")
	}
	if attr&AttrBlink != 0 {
		a.w.WriteString(";5")
	}
	if attr&AttrReverse != 0 {
		a.w.WriteString(";7")
	}
	a.writeColor(";38;2;", fg)
	a.writeColor(";48;2;", bg)
	a.w.WriteByte('m')

	a.lastFg = fg
	a.lastBg = bg
	a.lastAttr = attr
	a.lastValid = true
	a.styled = true
}

func (a *AnsiWriter) writeColor(prefix string, c RGB) {
	a.w.WriteString(prefix)
	a.w.WriteString(strconv.Itoa(int(c.R)))
	a.w.WriteByte(';')
	a.w.WriteString(strconv.Itoa(int(c.G)))
	a.w.WriteByte(';')
	a.w.WriteString(strconv.Itoa(int(c.B)))
}

// WriteRune writes the character and advances the tracked cursor column
func (a *AnsiWriter) WriteRune(r rune) {
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		a.w.WriteByte(byte(r))
		a.cursorCol++
		return
	}
	a.w.WriteRune(r)
	// Wide runes advance the hardware cursor by their display width
	a.cursorCol += runewidth.RuneWidth(r)
}

// ResetStyle emits SGR0 unless already at default
func (a *AnsiWriter) ResetStyle() {
	if a.lastValid && !a.styled {
		return
	}
	a.w.Write(csiSGR0)
	a.lastValid = true
	a.styled = false
}

// Flush pushes buffered output
func (a *AnsiWriter) Flush() error {
	return a.w.Flush()
}
