// Package modal implements the overlay state machines: menu, message box,
// selection list, and text entry box. Each controller is created once and
// reused across present/dismiss cycles. While presenting, a controller
// exclusively captures keyboard tokens through the driver's priority chain.
//
// On first presentation a controller snapshots the scene's overlay list and
// the focus chain's active identifier; dismiss restores both verbatim.
// Handlers live in the controller only for the duration of one presentation,
// so no long-lived widget ever holds a reference back to its presenter.
package modal

import (
	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/scene"
)

// Choice is one activatable option in a modal
// Action may be nil; activation then just dismisses
type Choice struct {
	Label  string
	Rune   rune // Bound activation key, 0 = none
	Action func()
}

// session is the shared Presenting-state bookkeeping
// The zero value is Idle
type session struct {
	active        bool
	savedOverlays []scene.Overlay
	savedFocus    focus.ID
}

// begin snapshots the scene state on Idle -> Presenting
func (s *session) begin(sc *scene.Scene) {
	s.active = true
	s.savedOverlays = sc.Overlays()
	s.savedFocus = sc.Focus().Active()
}

// present replaces the scene overlays with the saved list plus the modal
// Called on every navigation step so the highlight tracks the index
func (s *session) present(sc *scene.Scene, o scene.Overlay) {
	overlays := make([]scene.Overlay, 0, len(s.savedOverlays)+1)
	overlays = append(overlays, s.savedOverlays...)
	overlays = append(overlays, o)
	sc.SetOverlays(overlays)
}

// end restores the snapshotted overlays and focus, Presenting -> Idle
func (s *session) end(sc *scene.Scene) {
	sc.SetOverlays(s.savedOverlays)
	if s.savedFocus != "" {
		sc.Focus().Focus(s.savedFocus)
	}
	s.active = false
	s.savedOverlays = nil
	s.savedFocus = ""
}

// cycle moves an index circularly by dir within [0, n)
func cycle(i, dir, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+dir)%n + n) % n
}

// centeredBounds sizes a modal from content, clamps it to the viewport,
// and centers it
func centeredBounds(viewport geom.Rect, w, h int) geom.Rect {
	if w > viewport.W {
		w = viewport.W
	}
	if h > viewport.H {
		h = viewport.H
	}
	r := geom.Rect{W: w, H: h}
	return r.AlignedIn(viewport, geom.HCenter, geom.VCenter)
}

// anchoredBounds positions a dropdown directly below the anchor, flipping
// above when it would overflow the bottom edge, then sliding horizontally
// to stay within the viewport
func anchoredBounds(viewport, anchor geom.Rect, w, h int) geom.Rect {
	if w > viewport.W {
		w = viewport.W
	}
	if h > viewport.H {
		h = viewport.H
	}

	row := anchor.MaxRow() + 1
	if row+h-1 > viewport.MaxRow() {
		row = anchor.Row - h
		if row < viewport.Row {
			row = viewport.Row
		}
	}

	col := anchor.Col
	if col+w-1 > viewport.MaxCol() {
		col = viewport.MaxCol() - w + 1
	}
	if col < viewport.Col {
		col = viewport.Col
	}

	return geom.NewRect(row, col, w, h)
}
