package style

import "github.com/lixenwraith/loom/terminal"

// Style bundles foreground, background, and attributes for one cell
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// IsDefault returns true if the style matches the terminal default appearance
// The diff emitter skips the open-style primitive for default-styled cells
func (s Style) IsDefault() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// WithAttr returns the style with additional attribute bits set
func (s Style) WithAttr(a terminal.Attr) Style {
	s.Attr |= a
	return s
}

// Reversed returns the style with fg and bg swapped
func (s Style) Reversed() Style {
	s.Fg, s.Bg = s.Bg, s.Fg
	return s
}
