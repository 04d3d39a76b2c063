package widget

import "github.com/lixenwraith/loom/geom"

// Axis selects stack and split direction
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// Stack lays out children sequentially along one axis
// Each child is proposed the remaining span, not a pre-divided share;
// the cursor advances by the child's reported occupied length plus
// spacing, stopping once the remaining span reaches zero
type Stack struct {
	Axis     Axis
	Spacing  int
	Children []Erased
}

// VStack builds a vertical stack
func VStack(children ...Erased) Stack {
	return Stack{Axis: Vertical, Children: children}
}

// HStack builds a horizontal stack
func HStack(children ...Erased) Stack {
	return Stack{Axis: Horizontal, Children: children}
}

// WithSpacing returns the stack with inter-child spacing set
func (s Stack) WithSpacing(n int) Stack {
	s.Spacing = n
	return s
}

// Layout walks children in order against the remaining span
func (s Stack) Layout(ctx Context) Result {
	remaining := ctx.Bounds
	out := Result{Bounds: geom.Rect{Row: ctx.Bounds.Row, Col: ctx.Bounds.Col}}
	cursor := 0

	for _, child := range s.Children {
		if span(remaining, s.Axis) <= 0 {
			break
		}
		res := child.Layout(ctx.WithBounds(remaining))
		out.Children = append(out.Children, res)

		adv := span(res.Bounds, s.Axis)
		if adv < 0 {
			adv = 0
		}
		cursor += adv + s.Spacing
		remaining = advance(remaining, s.Axis, adv+s.Spacing)
	}

	// Occupied length is cursor travel minus the trailing spacing
	total := 0
	if len(out.Children) > 0 {
		total = cursor - s.Spacing
	}
	if total < 0 {
		total = 0
	}
	if total > span(ctx.Bounds, s.Axis) {
		total = span(ctx.Bounds, s.Axis)
	}

	if s.Axis == Vertical {
		out.Bounds.W = ctx.Bounds.W
		out.Bounds.H = total
	} else {
		out.Bounds.W = total
		out.Bounds.H = ctx.Bounds.H
	}
	return out
}

// span returns the rect's length along the axis
func span(r geom.Rect, a Axis) int {
	if a == Vertical {
		return r.H
	}
	return r.W
}

// advance shifts the rect origin along the axis and shrinks its span
func advance(r geom.Rect, a Axis, n int) geom.Rect {
	if a == Vertical {
		r.Row += n
		r.H -= n
	} else {
		r.Col += n
		r.W -= n
	}
	if r.H < 0 {
		r.H = 0
	}
	if r.W < 0 {
		r.W = 0
	}
	return r
}

// Spacer occupies max(MinLength, available) along both dimensions,
// pushing later stack siblings to the far edge of the remaining span
type Spacer struct {
	MinLength int
}

// Layout reports the proposed bounds, floored at MinLength
func (s Spacer) Layout(ctx Context) Result {
	b := ctx.Bounds
	if b.W < s.MinLength {
		b.W = s.MinLength
	}
	if b.H < s.MinLength {
		b.H = s.MinLength
	}
	return Result{Bounds: b}
}
