package widget

import (
	"testing"

	"github.com/lixenwraith/loom/focus"
	"github.com/lixenwraith/loom/geom"
)

func TestButtonReportsPaddedWidth(t *testing.T) {
	res := Button{Label: "OK"}.Layout(testContext(geom.NewRect(1, 1, 20, 1)))
	if res.Bounds.W != 4 {
		t.Errorf("Expected width 4 for padded OK, got %d", res.Bounds.W)
	}
}

func TestButtonHighlightsWhenFocused(t *testing.T) {
	chain := focus.NewChain()
	chain.Register(focus.Node{ID: "ok", Enabled: true, InTraversal: true})

	ctx := testContext(geom.NewRect(1, 1, 20, 1))
	ctx.Focus = chain.Snapshot()

	focused := Button{FocusID: "ok", Label: "OK"}.Layout(ctx)
	plain := Button{FocusID: "cancel", Label: "OK"}.Layout(ctx)

	if focused.Commands[0].Style == plain.Commands[0].Style {
		t.Error("Expected focused button styled differently")
	}
}

// TestButtonFocusRingDistinctFromActive verifies the focused-but-idle
// button carries the theme's ring tint, sitting between the plain and
// forced-active renderings
func TestButtonFocusRingDistinctFromActive(t *testing.T) {
	chain := focus.NewChain()
	chain.Register(focus.Node{ID: "ok", Enabled: true, InTraversal: true})

	ctx := testContext(geom.NewRect(1, 1, 20, 1))
	ctx.Focus = chain.Snapshot()

	focused := Button{FocusID: "ok", Label: "OK"}.Layout(ctx)
	active := Button{FocusID: "ok", Label: "OK", Active: true}.Layout(ctx)
	plain := Button{Label: "OK"}.Layout(ctx)

	if got, want := focused.Commands[0].Style.Bg, ctx.Theme.FocusRing(); got != want {
		t.Errorf("Expected focused background %v, got %v", want, got)
	}
	if focused.Commands[0].Style == active.Commands[0].Style {
		t.Error("Expected focused styling distinct from forced-active")
	}
	if focused.Commands[0].Style == plain.Commands[0].Style {
		t.Error("Expected focused styling distinct from plain")
	}
}

func TestButtonActiveOverridesFocus(t *testing.T) {
	ctx := testContext(geom.NewRect(1, 1, 20, 1))

	active := Button{Label: "OK", Active: true}.Layout(ctx)
	plain := Button{Label: "OK"}.Layout(ctx)

	if active.Commands[0].Style == plain.Commands[0].Style {
		t.Error("Expected forced-active button highlighted")
	}
}

func TestMenuBarItemBounds(t *testing.T) {
	m := MenuBar{Items: []MenuItem{
		{Title: "File"},
		{Title: "Edit"},
	}, OpenIndex: -1}

	bar := geom.NewRect(1, 1, 40, 1)
	first := m.ItemBounds(0, bar)
	second := m.ItemBounds(1, bar)

	// " File " starts after the leading bar cell
	if first != geom.NewRect(1, 2, 6, 1) {
		t.Errorf("Expected first item (1,2,6,1), got %+v", first)
	}
	if second.Col != first.MaxCol()+1+itemGap {
		t.Errorf("Expected second item after the gap, got col %d", second.Col)
	}
}

func TestMenuBarOpenItemHighlighted(t *testing.T) {
	m := MenuBar{Items: []MenuItem{
		{Title: "File", Entries: []MenuEntry{{Label: "Open"}}},
		{Title: "Edit", Entries: []MenuEntry{{Label: "Undo"}}},
	}, OpenIndex: 0}

	res := m.Layout(testContext(geom.NewRect(1, 1, 40, 1)))

	open, ok1 := commandAt(res, 1, 2)
	closed, ok2 := commandAt(res, 1, 10)
	if !ok1 || !ok2 {
		t.Fatal("Expected commands at both item positions")
	}
	if open.Style == closed.Style {
		t.Error("Expected open item styled differently")
	}
}
