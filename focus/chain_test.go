package focus

import "testing"

func node(id ID) Node {
	return Node{ID: id, Enabled: true, InTraversal: true}
}

// TestFirstRegistrationBecomesActive verifies auto-activation
func TestFirstRegistrationBecomesActive(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))

	if c.Active() != "a" {
		t.Errorf("Expected active a, got %q", c.Active())
	}
}

// TestAdvanceWraps verifies circular traversal over [a, b]
func TestAdvanceWraps(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))

	c.Advance()
	if c.Active() != "b" {
		t.Errorf("Expected b after advance, got %q", c.Active())
	}
	c.Advance()
	if c.Active() != "a" {
		t.Errorf("Expected wrap to a, got %q", c.Active())
	}
}

// TestRetreatWrapsBackward verifies circular traversal in reverse
func TestRetreatWrapsBackward(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))
	c.Register(node("c"))

	c.Retreat()
	if c.Active() != "c" {
		t.Errorf("Expected wrap to c, got %q", c.Active())
	}
	c.Retreat()
	if c.Active() != "b" {
		t.Errorf("Expected b, got %q", c.Active())
	}
}

// TestAdvanceSkipsDisabled verifies only enabled nodes are visited
func TestAdvanceSkipsDisabled(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(Node{ID: "b", Enabled: false, InTraversal: true})
	c.Register(node("c"))

	c.Advance()
	if c.Active() != "c" {
		t.Errorf("Expected c (skipping disabled b), got %q", c.Active())
	}
}

// TestAdvanceNoEligibleNodes verifies no-op with zero enabled nodes
func TestAdvanceNoEligibleNodes(t *testing.T) {
	c := NewChain()
	c.Register(Node{ID: "a", Enabled: false, InTraversal: true})
	c.Focus("a") // Ignored: disabled
	before := c.Active()

	c.Advance()
	if c.Active() != before {
		t.Errorf("Expected active unchanged, got %q", c.Active())
	}
}

// TestUnregisterActiveFallsBack verifies fallback to the new first node
func TestUnregisterActiveFallsBack(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))

	c.Unregister("a")
	if c.Active() != "b" {
		t.Errorf("Expected fallback to b, got %q", c.Active())
	}

	c.Unregister("b")
	if c.Active() != "" {
		t.Errorf("Expected empty active after last removal, got %q", c.Active())
	}
}

// TestFocusUnknownIgnored verifies silent rejection
func TestFocusUnknownIgnored(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))

	c.Focus("missing")
	if c.Active() != "a" {
		t.Errorf("Expected a, got %q", c.Active())
	}
}

// TestRegisterIdempotent verifies duplicate registration updates in place
func TestRegisterIdempotent(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))
	c.Register(Node{ID: "a", Enabled: false, InTraversal: true})

	nodes := c.Snapshot().Nodes()
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Enabled {
		t.Error("Expected re-registration to update node a")
	}
}

// TestSnapshotIsImmutable verifies mutations after snapshot are invisible
func TestSnapshotIsImmutable(t *testing.T) {
	c := NewChain()
	c.Register(node("a"))
	c.Register(node("b"))
	snap := c.Snapshot()

	c.Advance()
	c.Unregister("a")

	if snap.Active() != "a" {
		t.Errorf("Expected snapshot active a, got %q", snap.Active())
	}
	if len(snap.Nodes()) != 2 {
		t.Errorf("Expected snapshot to keep 2 nodes, got %d", len(snap.Nodes()))
	}
	if !snap.IsActive("a") || snap.IsActive("b") {
		t.Error("Expected IsActive to reflect snapshot state")
	}
}
