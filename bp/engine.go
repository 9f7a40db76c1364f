package bp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/factor"
)

// Engine runs belief propagation over a factor graph and owns the message
// state of the most recent run.
//
// An Engine is not safe for concurrent use; use one Engine per goroutine
// (several engines may share the same graph).
type Engine struct {
	graph *factor.Graph
	opts  options

	view     factor.View
	vars     []*variableNode
	facs     []*factorNode
	varNodes []node
	facNodes []node
	scratch  []float64
	ready    bool
}

// New creates an Engine for g.
// Returns ErrGraphNil if g is nil.
func New(g *factor.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{graph: g, opts: o}, nil
}

// Run is shorthand for New(g, opts...) followed by Engine.Run(iterations).
func Run(g *factor.Graph, iterations int, opts ...Option) (*factor.Report, error) {
	e, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(iterations)
}

// Run resets all messages and performs iterations rounds of message passing.
//
// Implementation:
//   - Stage 1: snapshot the graph and reset every message to uniform (all
//     zeros in log space).
//   - Stage 2: record snapshot 0 from the uniform messages.
//   - Stage 3: per iteration, variables → factors, then factors → variables,
//     then record a snapshot of every variable.
//
// Returns a report with iterations+1 snapshots per variable, the variable
// domains and the evidence active when the run started. There is no
// convergence test and no early exit.
func (e *Engine) Run(iterations int) (*factor.Report, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadIterations, iterations)
	}
	e.reset()
	report := factor.NewReport(e.view)
	log := e.opts.logger.With(zap.String("run_id", report.RunID))
	log.Debug("belief propagation started",
		zap.Int("iterations", iterations),
		zap.Int("variables", len(e.vars)),
		zap.Int("factors", len(e.facs)),
		zap.Int("evidence", len(e.view.Evidence)))

	if err := e.snapshot(0, report); err != nil {
		return nil, err
	}
	for it := 1; it <= iterations; it++ {
		exchange(e.varNodes, e.facNodes, e.scratch)
		exchange(e.facNodes, e.varNodes, e.scratch)
		if err := e.snapshot(it, report); err != nil {
			return nil, err
		}
		log.Debug("iteration done", zap.Int("iteration", it))
	}
	log.Info("belief propagation finished", zap.Int("iterations", iterations))

	return report, nil
}

// Marginal returns the normalized marginal of name under the messages cached
// by the most recent Run. Before any Run (or after Condition) the messages
// are uniform and the marginal is uniform too.
func (e *Engine) Marginal(name string) (factor.Distribution, error) {
	if !e.ready {
		e.reset()
	}
	v, err := e.view.Lookup(name)
	if err != nil {
		return factor.Distribution{}, err
	}

	return factor.Distribution{Domain: v.Domain(), P: e.vars[v.ID()].marginal()}, nil
}

// Condition delegates to the graph and discards the cached messages, which
// were computed for the previous factor set.
func (e *Engine) Condition(obs map[string]string) error {
	if err := e.graph.Condition(obs); err != nil {
		return err
	}
	e.ready = false

	return nil
}

// reset rebuilds the node arena from a fresh graph snapshot with uniform
// messages everywhere.
func (e *Engine) reset() {
	e.view = e.graph.View()
	e.vars = make([]*variableNode, len(e.view.Variables))
	e.facs = make([]*factorNode, len(e.view.Factors))
	e.varNodes = make([]node, len(e.vars))
	e.facNodes = make([]node, len(e.facs))

	maxSize := 0
	for i, v := range e.view.Variables {
		deg := len(e.view.Incident[i])
		n := &variableNode{
			v:     v,
			links: make([]link, deg),
			inbox: make([][]float64, deg),
		}
		for slot := range n.inbox {
			n.inbox[slot] = make([]float64, v.Size())
		}
		e.vars[i], e.varNodes[i] = n, n
		if v.Size() > maxSize {
			maxSize = v.Size()
		}
	}
	for i, f := range e.view.Factors {
		n := newFactorNode(f)
		e.facs[i], e.facNodes[i] = n, n
	}
	// Wire both sides: the variable's slot k is its k-th incident factor, the
	// factor's slot is the variable's scope position.
	for vi, fids := range e.view.Incident {
		for slot, fid := range fids {
			pos := e.view.Factors[fid].Position(vi)
			e.vars[vi].links[slot] = link{node: fid, slot: pos}
			e.facs[fid].links[pos] = link{node: vi, slot: slot}
		}
	}
	e.scratch = make([]float64, maxSize)
	e.ready = true
}

// snapshot appends the current marginal of every variable to r and runs the
// iteration hook.
func (e *Engine) snapshot(iter int, r *factor.Report) error {
	for _, n := range e.vars {
		r.Append(n.v.Name(), n.marginal())
	}
	if e.opts.onIteration != nil {
		if err := e.opts.onIteration(iter, r); err != nil {
			return fmt.Errorf("bp: iteration %d hook: %w", iter, err)
		}
	}

	return nil
}
