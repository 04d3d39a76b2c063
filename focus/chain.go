// Package focus tracks the ordered registry of interactive widgets and
// which one currently receives non-modal keyboard input.
package focus

// ID identifies a focusable node, unique within one chain
type ID string

// Node is one interactive widget's entry in the chain
type Node struct {
	ID          ID
	Enabled     bool
	InTraversal bool // Participates in Advance/Retreat cycling
}

// Chain is the ordered focus registry
// Not safe for concurrent mutation; owned by the scene's sequencing point
type Chain struct {
	nodes  []Node
	active ID
}

// NewChain creates an empty chain
func NewChain() *Chain {
	return &Chain{}
}

// Register adds a node, idempotent by ID
// The very first registration becomes active automatically
func (c *Chain) Register(n Node) {
	for i := range c.nodes {
		if c.nodes[i].ID == n.ID {
			c.nodes[i] = n
			return
		}
	}
	c.nodes = append(c.nodes, n)
	if len(c.nodes) == 1 {
		c.active = n.ID
	}
}

// Unregister removes the node by ID
// If it was active, the new first node becomes active, or none
func (c *Chain) Unregister(id ID) {
	for i := range c.nodes {
		if c.nodes[i].ID == id {
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
			break
		}
	}
	if c.active != id {
		return
	}
	if len(c.nodes) > 0 {
		c.active = c.nodes[0].ID
	} else {
		c.active = ""
	}
}

// Focus activates the node if it exists and is enabled, else is ignored
func (c *Chain) Focus(id ID) {
	for i := range c.nodes {
		if c.nodes[i].ID == id && c.nodes[i].Enabled {
			c.active = id
			return
		}
	}
}

// Active returns the current active ID, empty when none
func (c *Chain) Active() ID {
	return c.active
}

// SetEnabled flips a node's enabled flag in place
func (c *Chain) SetEnabled(id ID, enabled bool) {
	for i := range c.nodes {
		if c.nodes[i].ID == id {
			c.nodes[i].Enabled = enabled
			return
		}
	}
}

// Advance moves to the next enabled traversal node, circularly
// With no active node it jumps to the first enabled one
func (c *Chain) Advance() {
	c.cycle(1)
}

// Retreat moves to the previous enabled traversal node, circularly
// With no active node it jumps to the last enabled one
func (c *Chain) Retreat() {
	c.cycle(-1)
}

// cycle walks the chain in the given direction among eligible nodes
func (c *Chain) cycle(dir int) {
	n := len(c.nodes)
	if n == 0 {
		return
	}

	eligible := func(i int) bool {
		return c.nodes[i].Enabled && c.nodes[i].InTraversal
	}

	start := -1
	if c.active != "" {
		for i := range c.nodes {
			if c.nodes[i].ID == c.active {
				start = i
				break
			}
		}
	}

	if start < 0 {
		// No active node: jump to first/last eligible
		if dir > 0 {
			for i := 0; i < n; i++ {
				if eligible(i) {
					c.active = c.nodes[i].ID
					return
				}
			}
		} else {
			for i := n - 1; i >= 0; i-- {
				if eligible(i) {
					c.active = c.nodes[i].ID
					return
				}
			}
		}
		return
	}

	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		if eligible(i) {
			c.active = c.nodes[i].ID
			return
		}
	}
	// Zero eligible nodes: no-op
}

// Snapshot is an immutable copy of the chain handed to layout
// Layout code can read focus state but never mutate the live chain
type Snapshot struct {
	nodes  []Node
	active ID
}

// Snapshot copies the current chain state
func (c *Chain) Snapshot() Snapshot {
	nodes := make([]Node, len(c.nodes))
	copy(nodes, c.nodes)
	return Snapshot{nodes: nodes, active: c.active}
}

// Active returns the snapshotted active ID
func (s Snapshot) Active() ID {
	return s.active
}

// IsActive reports whether the given ID was active at snapshot time
func (s Snapshot) IsActive(id ID) bool {
	return s.active != "" && s.active == id
}

// Nodes returns the snapshotted nodes in registration order
func (s Snapshot) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}
