package driver

import "github.com/lixenwraith/loom/terminal"

// Handler is one participant in the input priority chain
// Modal controllers implement it; Presenting gates exclusive capture
type Handler interface {
	Handle(terminal.Event) bool
	Presenting() bool
}

// Router dispatches input tokens through a fixed priority chain
// The first handler that consumes a token stops the chain. While any
// handler is presenting, unconsumed tokens are swallowed: the fallback
// never sees a token that arrived during a modal.
type Router struct {
	handlers []Handler
	fallback func(terminal.Event) bool
}

// NewRouter creates a router with handlers in priority order
func NewRouter(handlers ...Handler) *Router {
	return &Router{handlers: handlers}
}

// SetFallback installs the application handler consulted when no modal
// is presenting
func (r *Router) SetFallback(f func(terminal.Event) bool) {
	r.fallback = f
}

// Route offers the event to each handler in priority order
// Returns true if anything consumed it
func (r *Router) Route(ev terminal.Event) bool {
	if r.Capturing() {
		// Exclusive capture: only presenting handlers may consume, and
		// an unconsumed token is swallowed, never falling through to an
		// idle handler's activation keys or the application fallback
		for _, h := range r.handlers {
			if h.Presenting() && h.Handle(ev) {
				return true
			}
		}
		return false
	}
	for _, h := range r.handlers {
		if h.Handle(ev) {
			return true
		}
	}
	if r.fallback != nil {
		return r.fallback(ev)
	}
	return false
}

// Capturing reports whether any handler is presenting
func (r *Router) Capturing() bool {
	for _, h := range r.handlers {
		if h.Presenting() {
			return true
		}
	}
	return false
}
