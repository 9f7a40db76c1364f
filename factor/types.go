// SPDX-License-Identifier: MIT
// Package: lvbayes/factor
//
// types.go — sentinel errors, options and the Graph container.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w (variable name, value, row index).
//   • Option constructors panic on meaningless input; graph methods never panic.

package factor

import (
	"errors"
	"math"
	"sync"

	"go.uber.org/zap"
)

// DefaultLogFloor is the log-weight stored for zero table entries.
const DefaultLogFloor = -1e6

// Sentinel errors for factor graph operations.
var (
	// ErrEmptyName indicates a variable was declared with an empty name.
	ErrEmptyName = errors.New("factor: variable name is empty")

	// ErrInvalidDomain indicates an empty domain or a repeated domain value.
	ErrInvalidDomain = errors.New("factor: invalid domain")

	// ErrDuplicateVariable indicates a variable name is already defined.
	ErrDuplicateVariable = errors.New("factor: variable already defined")

	// ErrUnknownVariable indicates an operation referenced an undeclared variable.
	ErrUnknownVariable = errors.New("factor: unknown variable")

	// ErrUnknownValue indicates a value outside the variable's domain.
	ErrUnknownValue = errors.New("factor: value not in domain")

	// ErrInvalidScope indicates an empty scope or a variable repeated within a scope.
	ErrInvalidScope = errors.New("factor: invalid scope")

	// ErrInvalidTable indicates a table row whose arity differs from the scope.
	ErrInvalidTable = errors.New("factor: invalid table row")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("factor: invalid weight")

	// ErrSnapshotRange indicates a Report snapshot index out of range.
	ErrSnapshotRange = errors.New("factor: snapshot index out of range")
)

// Row is one entry of a factor table expressed in the caller's original
// domain values, one value per scope position, in scope order.
type Row struct {
	Values []string
	Weight float64
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithLogFloor sets the log-weight stored for zero entries.
// Panics unless floor is finite and negative.
func WithLogFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor >= 0 {
		panic("factor: WithLogFloor(floor must be finite and < 0)")
	}
	return func(g *Graph) { g.logFloor = floor }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("factor: WithLogger(nil)")
	}
	return func(g *Graph) { g.logger = l }
}

// Graph is the bipartite factor graph.
//
// variables and factors are arenas indexed by ID; incident[v] lists the IDs of
// the factors attached to variable v in attachment order. Each Factor carries
// its own scope in declaration order. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	logFloor float64
	logger   *zap.Logger

	variables []*Variable
	byName    map[string]int
	factors   []*Factor
	incident  [][]int

	// evidence maps variable name → observed original-domain value.
	evidence map[string]string
}

// New creates an empty Graph.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		logFloor: DefaultLogFloor,
		logger:   zap.NewNop(),
		byName:   make(map[string]int),
		evidence: make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
