package style

import "github.com/lixenwraith/loom/terminal"

// Theme defines semantic colors threaded through the scene context
// An explicitly constructed value, never a process-wide mutable default
type Theme struct {
	Bg terminal.RGB
	Fg terminal.RGB

	Border  terminal.RGB
	Title   terminal.RGB
	HintFg  terminal.RGB
	Disable terminal.RGB

	HighlightBg terminal.RGB
	HighlightFg terminal.RGB

	MenuBg   terminal.RGB
	MenuFg   terminal.RGB
	StatusBg terminal.RGB
	StatusFg terminal.RGB

	ModalBg  terminal.RGB
	ButtonBg terminal.RGB
	ButtonFg terminal.RGB
	InputBg  terminal.RGB
}

// DefaultTheme returns reasonable defaults
// Callers copy and modify; the framework never writes to a theme
func DefaultTheme() Theme {
	return Theme{
		Bg:          terminal.RGB{R: 20, G: 20, B: 30},
		Fg:          terminal.RGB{R: 200, G: 200, B: 200},
		Border:      terminal.RGB{R: 60, G: 80, B: 100},
		Title:       terminal.RGB{R: 255, G: 255, B: 255},
		HintFg:      terminal.RGB{R: 100, G: 180, B: 200},
		Disable:     terminal.RGB{R: 100, G: 100, B: 100},
		HighlightBg: terminal.RGB{R: 40, G: 60, B: 90},
		HighlightFg: terminal.RGB{R: 255, G: 255, B: 255},
		MenuBg:      terminal.RGB{R: 40, G: 50, B: 70},
		MenuFg:      terminal.RGB{R: 200, G: 200, B: 200},
		StatusBg:    terminal.RGB{R: 30, G: 35, B: 45},
		StatusFg:    terminal.RGB{R: 140, G: 140, B: 140},
		ModalBg:     terminal.RGB{R: 30, G: 30, B: 40},
		ButtonBg:    terminal.RGB{R: 50, G: 50, B: 70},
		ButtonFg:    terminal.RGB{R: 180, G: 180, B: 180},
		InputBg:     terminal.RGB{R: 30, G: 30, B: 50},
	}
}

// Base returns the theme's default text style
func (t *Theme) Base() Style {
	return Style{Fg: t.Fg, Bg: t.Bg}
}

// Highlighted returns the active-choice style
func (t *Theme) Highlighted() Style {
	return Style{Fg: t.HighlightFg, Bg: t.HighlightBg}
}

// Disabled returns the inert-element style derived from the base colors
func (t *Theme) Disabled() Style {
	return Style{Fg: t.Disable, Bg: t.Bg}
}

// FocusRing returns a background for the focused widget, derived
// perceptually from the highlight color so custom themes stay readable
func (t *Theme) FocusRing() terminal.RGB {
	return Blend(t.Bg, t.HighlightBg, 0.55)
}
