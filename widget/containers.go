package widget

import "github.com/lixenwraith/loom/geom"

// Padding contracts the context bounds by fixed insets before
// delegating to its child
type Padding struct {
	Insets geom.Insets
	Child  Erased
}

// Pad wraps a widget with uniform insets
func Pad(n int, child Erased) Padding {
	return Padding{Insets: geom.UniformInsets(n), Child: child}
}

// Layout insets the bounds and delegates
func (p Padding) Layout(ctx Context) Result {
	inner := ctx.Bounds.Inset(p.Insets)
	res := p.Child.Layout(ctx.WithBounds(inner))
	return Result{
		Bounds:   ctx.Bounds,
		Children: []Result{res},
	}
}

// Layers lays out all children against the same bounds
// Later children paint over earlier ones
type Layers struct {
	Children []Erased
}

// Layout gives every child the full bounds, in order
func (l Layers) Layout(ctx Context) Result {
	out := Result{Bounds: ctx.Bounds}
	for _, child := range l.Children {
		out.Children = append(out.Children, child.Layout(ctx))
	}
	return out
}

// EnvScope applies a transform to the environment for one child only
// The context is cloned; siblings outside the scope are unaffected
type EnvScope struct {
	Transform func(Environment) Environment
	Child     Erased
}

// Layout clones the context with the transformed environment
func (e EnvScope) Layout(ctx Context) Result {
	scoped := ctx
	if e.Transform != nil {
		scoped.Env = e.Transform(ctx.Env)
	}
	return e.Child.Layout(scoped)
}
