// Package driver serializes input delivery and redraw requests onto one
// sequencing point. Background collaborators (the terminal event pump, a
// bound text stream, timers) post work through channels; the loop applies
// it and re-renders on demand. Scene, focus chain, surface, and the modal
// controllers are only ever touched from this loop.
package driver

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
	"github.com/lixenwraith/loom/surface"
	"github.com/lixenwraith/loom/terminal"
)

// Terminal is the backend contract the driver runs against
type Terminal interface {
	terminal.Writer
	Size() (width, height int)
	Events() <-chan terminal.Event
}

// Driver owns the render loop and the single sequencing point
type Driver struct {
	term   Terminal
	sc     *scene.Scene
	surf   *surface.Surface
	router *Router

	posts chan func()
	quit  chan struct{}

	width  int
	height int
	dirty  bool
}

// New creates a driver; the router's handlers see every key token first
func New(term Terminal, sc *scene.Scene, router *Router) *Driver {
	w, h := term.Size()
	return &Driver{
		term:   term,
		sc:     sc,
		surf:   surface.New(w, h),
		router: router,
		posts:  make(chan func(), 16),
		quit:   make(chan struct{}),
		width:  w,
		height: h,
		dirty:  true,
	}
}

// Scene returns the driven scene
func (d *Driver) Scene() *scene.Scene {
	return d.sc
}

// Post marshals work onto the sequencing point from any goroutine
// The function runs before the next render; it may mutate the scene
func (d *Driver) Post(f func()) {
	select {
	case d.posts <- f:
	case <-d.quit:
	}
}

// Redraw requests a render on the next loop turn
func (d *Driver) Redraw() {
	d.Post(func() {})
}

// Stop ends Run synchronously from the host's perspective
func (d *Driver) Stop() {
	close(d.quit)
}

// Run drives the loop until Stop or the terminal closes
// Every event is applied on this goroutine; nothing here blocks on I/O
// other than waiting for the next event
func (d *Driver) Run() {
	d.render()
	for {
		select {
		case <-d.quit:
			return
		case f := <-d.posts:
			f()
			d.dirty = true
		case ev, ok := <-d.term.Events():
			if !ok {
				return
			}
			switch ev.Type {
			case terminal.EventClosed, terminal.EventError:
				return
			case terminal.EventResize:
				d.HandleResize(ev.Width, ev.Height)
			case terminal.EventKey:
				if d.router.Route(ev) {
					d.dirty = true
				}
			}
		}
		d.drain()
		if d.dirty {
			d.render()
		}
	}
}

// drain applies any already-queued posts before rendering
func (d *Driver) drain() {
	for {
		select {
		case f := <-d.posts:
			f()
			d.dirty = true
		default:
			return
		}
	}
}

// HandleResize records new dimensions and forces a full refresh
func (d *Driver) HandleResize(w, h int) {
	d.width = w
	d.height = h
	d.surf.Resize(w, h)
	d.dirty = true
}

// render produces one frame and emits its diff
func (d *Driver) render() {
	bounds := geom.NewRect(1, 1, d.width, d.height)
	changes := d.sc.Render(d.surf, bounds)
	// Emission failures are the terminal's concern; the next frame
	// recomputes and re-emits a full diff regardless
	_ = scene.Emit(changes, d.term)
	d.dirty = false
}
