// File: factor.go
// Role: immutable dense log-weight tables over an ordered scope.
//
// Layout:
//   - cells are stored row-major over the scope domain sizes, last scope position
//     fastest: cell = Σ comb[i]·strides[i].
//   - every cell exists; omitted combinations hold the graph's log floor.

package factor

import (
	"fmt"
	"math"
	"strings"
)

// Factor is a non-negative function over an ordered tuple of variables,
// stored as natural-log weights.
type Factor struct {
	id      int
	name    string
	scope   []int
	names   []string
	sizes   []int
	strides []int
	logw    []float64
}

// newTable allocates a factor whose cells all hold floor.
func newTable(id int, vars []*Variable, floor float64) *Factor {
	f := &Factor{
		id:      id,
		scope:   make([]int, len(vars)),
		names:   make([]string, len(vars)),
		sizes:   make([]int, len(vars)),
		strides: make([]int, len(vars)),
	}
	cells := 1
	for i := len(vars) - 1; i >= 0; i-- {
		f.scope[i] = vars[i].id
		f.names[i] = vars[i].name
		f.sizes[i] = vars[i].Size()
		f.strides[i] = cells
		cells *= f.sizes[i]
	}
	f.name = "F_" + strings.Join(f.names, "")
	f.logw = make([]float64, cells)
	for i := range f.logw {
		f.logw[i] = floor
	}

	return f
}

// buildFactor converts caller rows into a dense log table.
//
// Implementation:
//   - Stage 1: allocate a floor-filled table over the scope.
//   - Stage 2: map every row's original values to indices and store log(weight);
//     later duplicates overwrite earlier ones.
func buildFactor(id int, vars []*Variable, rows []Row, floor float64) (*Factor, error) {
	f := newTable(id, vars, floor)
	comb := make([]int, len(vars))
	for r, row := range rows {
		if len(row.Values) != len(vars) {
			return nil, fmt.Errorf("%w: row %d has %d values, scope %v has %d",
				ErrInvalidTable, r, len(row.Values), f.names, len(vars))
		}
		w := row.Weight
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: row %d weight %v", ErrInvalidWeight, r, w)
		}
		for i, value := range row.Values {
			idx, err := vars[i].Index(value)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			comb[i] = idx
		}
		f.logw[f.cell(comb)] = LogWeight(w, floor)
	}

	return f, nil
}

// newIndicator builds the unary evidence table: log 1 at idx, floor elsewhere.
func newIndicator(id int, v *Variable, idx int, floor float64) *Factor {
	f := newTable(id, []*Variable{v}, floor)
	f.logw[idx] = 0

	return f
}

func (f *Factor) cell(comb []int) int {
	c := 0
	for i, d := range comb {
		c += d * f.strides[i]
	}

	return c
}

// ID returns the arena index of the factor.
func (f *Factor) ID() int { return f.id }

// Name returns "F_" followed by the concatenated scope names.
func (f *Factor) Name() string { return f.name }

// Arity returns the scope length.
func (f *Factor) Arity() int { return len(f.scope) }

// Scope returns a copy of the scope variable IDs in scope order.
func (f *Factor) Scope() []int { return append([]int(nil), f.scope...) }

// ScopeNames returns a copy of the scope variable names in scope order.
func (f *Factor) ScopeNames() []string { return append([]string(nil), f.names...) }

// Sizes returns a copy of the domain size at every scope position.
func (f *Factor) Sizes() []int { return append([]int(nil), f.sizes...) }

// Position returns the scope position of variable id, or -1.
func (f *Factor) Position(id int) int {
	for i, v := range f.scope {
		if v == id {
			return i
		}
	}

	return -1
}

// Len returns the number of table cells (product of scope domain sizes).
func (f *Factor) Len() int { return len(f.logw) }

// LogWeight returns the log-weight of a combination of domain indices.
// comb must hold one in-range index per scope position.
func (f *Factor) LogWeight(comb []int) float64 { return f.logw[f.cell(comb)] }

// LogWeightAt returns the log-weight stored in cell c.
func (f *Factor) LogWeightAt(c int) float64 { return f.logw[c] }

// Decode writes the combination stored in cell c into dst and returns it.
// dst is grown when shorter than the scope.
func (f *Factor) Decode(c int, dst []int) []int {
	if cap(dst) < len(f.scope) {
		dst = make([]int, len(f.scope))
	}
	dst = dst[:len(f.scope)]
	for i, s := range f.strides {
		dst[i] = c / s
		c %= s
	}

	return dst
}
