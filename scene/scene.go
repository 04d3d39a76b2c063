// Package scene composes the root widget and the overlay list into frames:
// per frame it snapshots focus, lays out root and overlays against one
// full-viewport context, flattens the results into the surface, and hands
// the resulting diff to the terminal writer.
package scene

import (
	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
	"github.com/lixenwraith/loom/surface"
	"github.com/lixenwraith/loom/widget"
)

// Overlay is a widget anchored to an explicit, frame-independent rect
// Later overlays in the scene list paint on top of earlier ones
type Overlay struct {
	Bounds  geom.Rect
	Content widget.Erased
}

// Scene owns the root widget, the focus chain, and the overlay list
// Not safe for concurrent mutation; the driver serializes access
type Scene struct {
	theme    style.Theme
	env      widget.Environment
	chain    *focus.Chain
	root     widget.Erased
	overlays []Overlay

	viewport geom.Rect
}

// New creates a scene with the given theme and root widget
func New(theme style.Theme, root widget.Erased) *Scene {
	return &Scene{
		theme: theme,
		env:   widget.DefaultEnvironment(),
		chain: focus.NewChain(),
		root:  root,
	}
}

// Focus returns the live focus chain
func (s *Scene) Focus() *focus.Chain {
	return s.chain
}

// Theme returns the active theme
func (s *Scene) Theme() *style.Theme {
	return &s.theme
}

// Env returns the root environment
func (s *Scene) Env() widget.Environment {
	return s.env
}

// SetEnv replaces the root environment
func (s *Scene) SetEnv(env widget.Environment) {
	s.env = env
}

// SetRoot replaces the root widget
func (s *Scene) SetRoot(root widget.Erased) {
	s.root = root
}

// Viewport returns the bounds of the last rendered frame
func (s *Scene) Viewport() geom.Rect {
	return s.viewport
}

// PushOverlay appends an overlay on top of the current list
func (s *Scene) PushOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
}

// Overlays returns a copy of the current overlay list
func (s *Scene) Overlays() []Overlay {
	out := make([]Overlay, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// SetOverlays replaces the overlay list with a copy of the given one
func (s *Scene) SetOverlays(overlays []Overlay) {
	s.overlays = make([]Overlay, len(overlays))
	copy(s.overlays, overlays)
}

// Render produces one frame into the surface and returns its diff
// Overlays are laid out in list order against the same full-viewport
// context as the root; last write wins per cell
func (s *Scene) Render(surf *surface.Surface, bounds geom.Rect) []surface.Change {
	s.viewport = bounds

	surf.BeginFrame()
	if surf.Width() != bounds.W || surf.Height() != bounds.H {
		surf.Resize(bounds.W, bounds.H)
	}
	surf.Clear(surface.Tile{Rune: ' ', Style: s.theme.Base()})

	ctx := widget.Context{
		Bounds: bounds,
		Theme:  &s.theme,
		Focus:  s.chain.Snapshot(),
		Env:    s.env,
	}

	results := []widget.Result{s.root.Layout(ctx)}
	for _, o := range s.overlays {
		results = append(results, o.Content.Layout(ctx.WithBounds(o.Bounds)))
	}

	for _, res := range results {
		writeResult(surf, res)
	}
	return surf.Diff()
}

// writeResult flattens a layout result depth-first into the surface
// A node's own commands apply before its children's
func writeResult(surf *surface.Surface, res widget.Result) {
	for _, cmd := range res.Commands {
		surf.Set(surface.Tile{Rune: cmd.Rune, Style: cmd.Style}, cmd.Row, cmd.Col)
	}
	for _, child := range res.Children {
		writeResult(surf, child)
	}
}
