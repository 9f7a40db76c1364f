// File: graph.go
// Role: variable/factor lifecycle and queries.
//
// Determinism:
//   - Variables() and Factors() enumerate in insertion (ID) order.
//   - Incident factors of a variable keep attachment order.
//
// Concurrency:
//   - Mutations take the write lock; queries and View take the read lock.

package factor

import (
	"fmt"

	"go.uber.org/zap"
)

// AddVariable declares a variable with the given ordered domain.
//
// Returns:
//   - *Variable: the new immutable variable node.
//   - error: ErrEmptyName, ErrInvalidDomain, or ErrDuplicateVariable.
//
// Complexity: O(k), k = len(domain).
func (g *Graph) AddVariable(name string, domain []string) (*Variable, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}
	v, err := newVariable(len(g.variables), name, domain)
	if err != nil {
		return nil, err
	}
	g.variables = append(g.variables, v)
	g.incident = append(g.incident, nil)
	g.byName[name] = v.id

	return v, nil
}

// AddFactor adds a factor over scope and connects it to every scope variable,
// in scope order, on both sides of the bipartite graph.
//
// Implementation:
//   - Stage 1: resolve scope names (ErrUnknownVariable) and reject empty or
//     repeated scopes (ErrInvalidScope).
//   - Stage 2: convert rows into a dense log table (ErrInvalidTable,
//     ErrUnknownValue, ErrInvalidWeight). Omitted combinations weigh 0.
//   - Stage 3: register the factor and append its ID to each variable's
//     incident list.
//
// Complexity: O(Π|dom(scope)| + len(rows)·len(scope)).
func (g *Graph) AddFactor(scope []string, rows []Row) (*Factor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	vars, err := g.resolveScope(scope)
	if err != nil {
		return nil, err
	}
	f, err := buildFactor(len(g.factors), vars, rows, g.logFloor)
	if err != nil {
		return nil, err
	}
	g.attach(f)

	return f, nil
}

func (g *Graph) resolveScope(scope []string) ([]*Variable, error) {
	if len(scope) == 0 {
		return nil, fmt.Errorf("%w: empty scope", ErrInvalidScope)
	}
	vars := make([]*Variable, len(scope))
	seen := make(map[int]struct{}, len(scope))
	for i, name := range scope {
		id, ok := g.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q appears twice in %v", ErrInvalidScope, name, scope)
		}
		seen[id] = struct{}{}
		vars[i] = g.variables[id]
	}

	return vars, nil
}

// attach registers f under its ID and wires adjacency. Caller holds mu.
func (g *Graph) attach(f *Factor) {
	g.factors = append(g.factors, f)
	for _, v := range f.scope {
		g.incident[v] = append(g.incident[v], f.id)
	}
	g.logger.Debug("factor added",
		zap.String("factor", f.name),
		zap.Int("id", f.id),
		zap.Int("cells", len(f.logw)))
}

// Variable returns the variable with the given ID, or nil when out of range.
func (g *Graph) Variable(id int) *Variable {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.variables) {
		return nil
	}

	return g.variables[id]
}

// VariableByName looks a variable up by name.
// Returns ErrUnknownVariable when absent.
func (g *Graph) VariableByName(name string) (*Variable, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return g.variables[id], nil
}

// Variables returns all variables in insertion order.
func (g *Graph) Variables() []*Variable {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Variable(nil), g.variables...)
}

// NumVariables returns the number of declared variables.
func (g *Graph) NumVariables() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.variables)
}

// Factor returns the factor with the given ID, or nil when out of range.
func (g *Graph) Factor(id int) *Factor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.factors) {
		return nil
	}

	return g.factors[id]
}

// Factors returns all factors in insertion order.
func (g *Graph) Factors() []*Factor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Factor(nil), g.factors...)
}

// NumFactors returns the number of factors.
func (g *Graph) NumFactors() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.factors)
}

// Incident returns the IDs of the factors attached to variable id, in
// attachment order. Returns nil for an out-of-range ID.
func (g *Graph) Incident(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.incident) {
		return nil
	}

	return append([]int(nil), g.incident[id]...)
}

// Evidence returns a copy of the active observations (name → value).
func (g *Graph) Evidence() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyEvidence(g.evidence)
}

// Domains returns every variable's original domain keyed by name.
func (g *Graph) Domains() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.variables))
	for _, v := range g.variables {
		out[v.name] = v.Domain()
	}

	return out
}

// LogFloor returns the log-weight used for zero entries.
func (g *Graph) LogFloor() float64 { return g.logFloor }

// Clone returns an independent copy of the graph structure and evidence.
// Variables and factors are immutable and therefore shared.
//
// Complexity: O(V + F + Σ deg(v))
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		logFloor:  g.logFloor,
		logger:    g.logger,
		variables: append([]*Variable(nil), g.variables...),
		byName:    make(map[string]int, len(g.byName)),
		factors:   append([]*Factor(nil), g.factors...),
		incident:  make([][]int, len(g.incident)),
		evidence:  copyEvidence(g.evidence),
	}
	for name, id := range g.byName {
		clone.byName[name] = id
	}
	for i, ids := range g.incident {
		clone.incident[i] = append([]int(nil), ids...)
	}

	return clone
}

func copyEvidence(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
