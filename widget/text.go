package widget

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
)

// Text renders a string one rune per cell, clipped to bounds
// With Wrap set, text wraps at word boundaries and the result reports
// the number of lines actually used; otherwise it occupies one row
type Text struct {
	Content string
	Style   style.Style
	Wrap    bool
}

// Label builds a single-line text widget
func Label(s string, st style.Style) Text {
	return Text{Content: s, Style: st}
}

// Layout emits one command per visible rune
func (t Text) Layout(ctx Context) Result {
	b := ctx.Bounds
	if b.Empty() {
		return Result{Bounds: geom.Rect{Row: b.Row, Col: b.Col}}
	}

	lines := []string{t.Content}
	if t.Wrap {
		lines = WrapText(t.Content, b.W)
	}

	out := Result{}
	rows := 0
	width := 0
	for i, line := range lines {
		if i >= b.H {
			break
		}
		cols := 0
		for _, r := range line {
			if cols >= b.W {
				break
			}
			out.Commands = append(out.Commands, Command{
				Row:   b.Row + i,
				Col:   b.Col + cols,
				Rune:  r,
				Style: t.Style,
			})
			cols++
		}
		if cols > width {
			width = cols
		}
		rows++
	}
	out.Bounds = geom.NewRect(b.Row, b.Col, width, rows)
	return out
}

// Fill paints every cell of its bounds with one rune and style
type Fill struct {
	Rune  rune
	Style style.Style
}

// Layout fills the full bounds
func (f Fill) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: b}
	r := f.Rune
	if r == 0 {
		r = ' '
	}
	for row := b.Row; row <= b.MaxRow(); row++ {
		for col := b.Col; col <= b.MaxCol(); col++ {
			out.Commands = append(out.Commands, Command{Row: row, Col: col, Rune: r, Style: f.Style})
		}
	}
	return out
}

// --- Text helpers ---

// RuneLen returns display width (rune count, not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Truncate truncates string with … suffix if it exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads string with spaces to width
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	result := make([]rune, width)
	copy(result, runes)
	for i := len(runes); i < width; i++ {
		result[i] = ' '
	}
	return string(result)
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no longer than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lastSpace := -1

	for i := 0; i <= len(runes); i++ {
		if i-lineStart >= width || i == len(runes) {
			if i == len(runes) {
				if lineStart < len(runes) {
					lines = append(lines, string(runes[lineStart:]))
				}
				break
			}

			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))

			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
		}

		if i < len(runes) && runes[i] == ' ' {
			lastSpace = i
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
