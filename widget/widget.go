// Package widget defines the layout protocol and the composition
// containers: stacks, splits, padding, spacers, layered overlays,
// environment scopes, and the scaffold chrome, plus the leaf widgets
// the modal controllers and demo build on.
//
// Layout is a single pass with no pre-measurement: containers propose
// bounds, children report what they actually occupied, and the container
// advances by the reported length. A child that reports more than it was
// proposed will overlap its next sibling; children must not report larger
// bounds than proposed. This is a caller contract, kept deliberately to
// avoid a second layout pass.
package widget

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
)

// Command is one cell write at an absolute 1-based position
type Command struct {
	Row, Col int
	Rune     rune
	Style    style.Style
}

// Result is the output of one layout call: the bounds the widget actually
// occupied, its own draw commands, and its children's results in paint
// order. A parent's commands apply before its descendants'.
type Result struct {
	Bounds   geom.Rect
	Commands []Command
	Children []Result
}

// Widget produces a layout result from a context
// Equal input must yield equal output; layout has no side effects
type Widget interface {
	Layout(Context) Result
}

// Composite is a widget that delegates its layout entirely to a body
type Composite interface {
	Body() Widget
}

// LayoutComposite lays out a composite through its body
func LayoutComposite(c Composite, ctx Context) Result {
	return c.Body().Layout(ctx)
}

// Erased wraps any widget for heterogeneous collections
// Copying the wrapper shares only the read-only Layout capability;
// the zero value is an empty widget occupying nothing
type Erased struct {
	w Widget
}

// Erase wraps a widget
func Erase(w Widget) Erased {
	return Erased{w: w}
}

// IsNil returns true for the zero wrapper
func (e Erased) IsNil() bool {
	return e.w == nil
}

// Layout delegates to the wrapped widget
func (e Erased) Layout(ctx Context) Result {
	if e.w == nil {
		return Result{Bounds: geom.Rect{Row: ctx.Bounds.Row, Col: ctx.Bounds.Col}}
	}
	return e.w.Layout(ctx)
}
