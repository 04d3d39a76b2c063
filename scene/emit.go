package scene

import (
	"github.com/lixenwraith/loom/surface"
	"github.com/lixenwraith/loom/terminal"
)

// Emit translates a diff into draw primitives for the terminal writer
// Each change sets an absolute position first, so correctness does not
// depend on change order; row-major input just keeps cursor moves local
func Emit(changes []surface.Change, w terminal.Writer) error {
	if len(changes) == 0 {
		return nil
	}
	// Unknown initial terminal state: first default cell forces a reset
	styled := true
	for _, ch := range changes {
		w.MoveCursor(ch.Row, ch.Col)
		if ch.Tile.Style.IsDefault() {
			// Plain text: explicit reset instead of a spurious style open
			if styled {
				w.ResetStyle()
				styled = false
			}
		} else {
			w.OpenStyle(ch.Tile.Style.Fg, ch.Tile.Style.Bg, ch.Tile.Style.Attr)
			styled = true
		}
		r := ch.Tile.Rune
		if r == 0 {
			r = ' '
		}
		w.WriteRune(r)
	}
	// Close any open style so it never bleeds into the next write
	if styled {
		w.ResetStyle()
	}
	return w.Flush()
}
