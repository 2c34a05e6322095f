package tree

// registry deduplicates nodes by full path within a single build pass,
// so every shared ancestor segment yields exactly one node. It is
// discarded when the pass finishes and is never consulted by
// incremental mutations.
type registry struct {
	nodes map[string]Node
}

func newRegistry() *registry {
	return &registry{nodes: map[string]Node{}}
}

// getOrCreate returns the node already registered for fullPath, or
// invokes factory to create and register one. created reports whether
// factory ran.
func (r *registry) getOrCreate(fullPath string, factory func() Node) (n Node, created bool) {
	if n, ok := r.nodes[fullPath]; ok {
		return n, false
	}
	n = factory()
	r.nodes[fullPath] = n
	return n, true
}
