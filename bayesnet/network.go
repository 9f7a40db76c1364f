package bayesnet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbayes/factor"
)

var (
	// ErrDuplicateVariable indicates a variable name is already defined.
	ErrDuplicateVariable = errors.New("bayesnet: variable already defined")

	// ErrUnknownVariable indicates a reference to an undeclared variable.
	ErrUnknownVariable = errors.New("bayesnet: unknown variable")

	// ErrDuplicateCPT indicates a child already has a CPT.
	ErrDuplicateCPT = errors.New("bayesnet: CPT already defined")

	// ErrInvalidCPT indicates a malformed conditional probability table.
	ErrInvalidCPT = errors.New("bayesnet: invalid CPT")

	// ErrMissingCPT indicates a variable without a CPT.
	ErrMissingCPT = errors.New("bayesnet: missing CPT")

	// ErrCycleDetected indicates the parent relation contains a cycle.
	ErrCycleDetected = errors.New("bayesnet: cycle detected")
)

// Network is a directed acyclic graph of discrete variables with one
// conditional probability table per variable.
type Network struct {
	order    []string // declaration order
	domains  map[string][]string
	parents  map[string][]string
	children map[string][]string
	cpts     map[string][]factor.Row
}

// New creates an empty Network.
func New() *Network {
	return &Network{
		domains:  make(map[string][]string),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
		cpts:     make(map[string][]factor.Row),
	}
}

// AddVariable declares a variable with its ordered domain.
func (n *Network) AddVariable(name string, domain []string) error {
	if _, exists := n.domains[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}
	n.order = append(n.order, name)
	n.domains[name] = append([]string(nil), domain...)

	return nil
}

// AddCPT sets the conditional probability table of child given parents.
// Each row holds len(parents)+1 values: the parent values in order, then the
// child value. Parent edges are recorded in the given order.
func (n *Network) AddCPT(parents []string, child string, rows []factor.Row) error {
	if _, ok := n.domains[child]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, child)
	}
	if _, ok := n.cpts[child]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCPT, child)
	}
	seen := make(map[string]struct{}, len(parents))
	for _, p := range parents {
		if _, ok := n.domains[p]; !ok {
			return fmt.Errorf("%w: parent %q of %q", ErrUnknownVariable, p, child)
		}
		if p == child {
			return fmt.Errorf("%w: %q is its own parent", ErrInvalidCPT, child)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: parent %q repeated for %q", ErrInvalidCPT, p, child)
		}
		seen[p] = struct{}{}
	}
	for i, row := range rows {
		if len(row.Values) != len(parents)+1 {
			return fmt.Errorf("%w: %q row %d has %d values, want %d",
				ErrInvalidCPT, child, i, len(row.Values), len(parents)+1)
		}
	}

	n.parents[child] = append([]string(nil), parents...)
	for _, p := range parents {
		n.children[p] = append(n.children[p], child)
	}
	n.cpts[child] = append([]factor.Row(nil), rows...)

	return nil
}

// Variables returns the variable names in declaration order.
func (n *Network) Variables() []string { return append([]string(nil), n.order...) }

// Domain returns the domain of name, or nil when undeclared.
func (n *Network) Domain(name string) []string {
	d, ok := n.domains[name]
	if !ok {
		return nil
	}

	return append([]string(nil), d...)
}

// Parents returns the parents of name in CPT order.
func (n *Network) Parents(name string) ([]string, error) {
	if _, ok := n.domains[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return append([]string(nil), n.parents[name]...), nil
}

// Children returns the children of name in the order their CPTs were added.
func (n *Network) Children(name string) ([]string, error) {
	if _, ok := n.domains[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return append([]string(nil), n.children[name]...), nil
}

// CPT returns a copy of the rows of name's table (nil when none was added).
func (n *Network) CPT(name string) []factor.Row {
	rows, ok := n.cpts[name]
	if !ok {
		return nil
	}

	return append([]factor.Row(nil), rows...)
}

// Ancestors returns, sorted, the given variables together with every
// variable they descend from.
// Complexity: O(V + E)
func (n *Network) Ancestors(names ...string) ([]string, error) {
	toVisit := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := n.domains[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		toVisit = append(toVisit, name)
	}
	found := make(map[string]struct{})
	for len(toVisit) > 0 {
		v := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if _, ok := found[v]; ok {
			continue
		}
		found[v] = struct{}{}
		toVisit = append(toVisit, n.parents[v]...)
	}
	out := make([]string, 0, len(found))
	for v := range found {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// FactorGraph converts the network into a factor graph: variables in
// declaration order, then one factor per CPT with scope (parents..., child),
// added in topological order. Variables without a CPT get no factor.
func (n *Network) FactorGraph(opts ...factor.Option) (*factor.Graph, error) {
	order, err := n.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	g := factor.New(opts...)
	for _, name := range n.order {
		if _, err = g.AddVariable(name, n.domains[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range order {
		rows, ok := n.cpts[name]
		if !ok {
			continue
		}
		scope := append(append([]string(nil), n.parents[name]...), name)
		if _, err = g.AddFactor(scope, rows); err != nil {
			return nil, fmt.Errorf("bayesnet: CPT of %q: %w", name, err)
		}
	}

	return g, nil
}
