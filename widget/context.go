package widget

import (
	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/style"
)

// Environment carries ambient layout values down the widget tree
// Subtrees override it only through EnvScope; siblings are unaffected
type Environment struct {
	MenuRowHeight   int
	StatusRowHeight int
	ContentInsets   geom.Insets
}

// DefaultEnvironment returns the standard chrome dimensions
func DefaultEnvironment() Environment {
	return Environment{
		MenuRowHeight:   1,
		StatusRowHeight: 1,
	}
}

// Context is the per-node layout input, passed down by value
// Focus is an immutable snapshot; layout can never mutate the live chain
type Context struct {
	Bounds geom.Rect
	Theme  *style.Theme
	Focus  focus.Snapshot
	Env    Environment
}

// WithBounds returns the context narrowed to the given bounds
func (c Context) WithBounds(b geom.Rect) Context {
	c.Bounds = b
	return c
}
