package bayesnet

// Visitation states for the depth-first traversal.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // it and all its descendants are finished
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	net   *Network
	state map[string]int
	order []string // post-order
}

// TopologicalOrder returns the variables ordered so that every parent
// precedes its children. Roots are explored in declaration order, children
// in CPT insertion order, so the result is deterministic.
// Returns ErrCycleDetected if the parent relation has a cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func (n *Network) TopologicalOrder() ([]string, error) {
	sorter := &topoSorter{
		net:   n,
		state: make(map[string]int, len(n.order)),
		order: make([]string, 0, len(n.order)),
	}
	for _, v := range n.order {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	t.state[id] = gray
	for _, child := range t.net.children[id] {
		if err := t.visit(child); err != nil {
			return err
		}
	}
	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
