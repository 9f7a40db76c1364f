// File: view.go
// Role: read-only snapshots of a graph for inference runs.
// Determinism:
//   - Slices keep ID order; Incident keeps attachment order.
// Concurrency:
//   - Built under a single read lock; the result never aliases mutable graph state.
// AI-HINT (file):
//   - Engines take a fresh View at the start of every run so evidence added via
//     Condition is always picked up.

package factor

import "fmt"

// View is a consistent, immutable snapshot of a Graph's structure.
type View struct {
	// Variables in ID order.
	Variables []*Variable

	// Factors in ID order.
	Factors []*Factor

	// Incident[v] lists the factor IDs attached to variable v in attachment order.
	Incident [][]int

	// Evidence maps observed variable names to their values.
	Evidence map[string]string

	byName map[string]int
}

// View snapshots the graph.
// Complexity: O(V + F + Σ deg(v))
func (g *Graph) View() View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := View{
		Variables: append([]*Variable(nil), g.variables...),
		Factors:   append([]*Factor(nil), g.factors...),
		Incident:  make([][]int, len(g.incident)),
		Evidence:  copyEvidence(g.evidence),
		byName:    make(map[string]int, len(g.byName)),
	}
	for i, ids := range g.incident {
		v.Incident[i] = append([]int(nil), ids...)
	}
	for name, id := range g.byName {
		v.byName[name] = id
	}

	return v
}

// Lookup returns the variable called name.
// Returns ErrUnknownVariable when absent from the snapshot.
func (v View) Lookup(name string) (*Variable, error) {
	id, ok := v.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return v.Variables[id], nil
}

// Domains returns every variable's original domain keyed by name.
func (v View) Domains() map[string][]string {
	out := make(map[string][]string, len(v.Variables))
	for _, vv := range v.Variables {
		out[vv.name] = vv.Domain()
	}

	return out
}
