package widget

import "github.com/lixenwraith/loom/geom"

// Scaffold is the canonical chrome: one reserved row at the top for an
// optional menu bar, one at the bottom for an optional status bar, and
// the remainder for content. Row heights come from the environment.
// When the chrome rows would overlap, content clamps to zero height.
type Scaffold struct {
	MenuBar   Erased
	Content   Erased
	StatusBar Erased
}

// Layout reserves chrome rows and hands the remainder to content
func (s Scaffold) Layout(ctx Context) Result {
	b := ctx.Bounds
	out := Result{Bounds: b}

	topH := 0
	if !s.MenuBar.IsNil() {
		topH = ctx.Env.MenuRowHeight
	}
	bottomH := 0
	if !s.StatusBar.IsNil() {
		bottomH = ctx.Env.StatusRowHeight
	}

	if topH > 0 && b.H >= topH {
		top := geom.NewRect(b.Row, b.Col, b.W, topH)
		out.Children = append(out.Children, s.MenuBar.Layout(ctx.WithBounds(top)))
	}

	contentH := b.H - topH - bottomH
	if contentH < 0 {
		contentH = 0
	}
	content := geom.NewRect(b.Row+topH, b.Col, b.W, contentH)
	content = content.Inset(ctx.Env.ContentInsets)
	out.Children = append(out.Children, s.Content.Layout(ctx.WithBounds(content)))

	if bottomH > 0 && b.H >= topH+bottomH {
		bottom := geom.NewRect(b.MaxRow()-bottomH+1, b.Col, b.W, bottomH)
		out.Children = append(out.Children, s.StatusBar.Layout(ctx.WithBounds(bottom)))
	}
	return out
}
