// File: sampler.go
// Role: single-site Gibbs chain over a factor.Graph.
// Determinism:
//   - Every random decision (initial state, site choice, draw) comes from the
//     sampler's own *rand.Rand, in a fixed order.
// AI-HINT (file):
//   - Internal state is []int indexed by variable ID; names only appear at the
//     public boundary (SampleVar, WithInitialState, Samples).

package gibbs

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvbayes/factor"
)

// Sampler draws Gibbs chains from the joint distribution of a factor graph
// (proportional to the product of all factor weights).
type Sampler struct {
	graph  *factor.Graph
	rng    *rand.Rand
	logger *zap.Logger

	view   factor.View
	scopes [][]int // scope per factor ID, cached per view
	logp   []float64
	comb   []int
}

// New creates a Sampler over g.
// Returns ErrGraphNil if g is nil.
func New(g *factor.Graph, opts ...Option) (*Sampler, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = newRand(DefaultSeed)
	}
	s := &Sampler{graph: g, rng: c.rng, logger: c.logger}
	s.refresh()

	return s, nil
}

// Condition delegates to the graph and refreshes the sampler's view so the
// next run sees the new evidence.
func (s *Sampler) Condition(obs map[string]string) error {
	if err := s.graph.Condition(obs); err != nil {
		return err
	}
	s.refresh()

	return nil
}

// SampleVar draws a new value for name from its full conditional given state,
// which must hold a value for every variable sharing a factor with name.
//
// Errors: factor.ErrUnknownVariable for an undeclared name (or a state entry
// missing from the blanket), factor.ErrUnknownValue for a value outside its
// domain.
func (s *Sampler) SampleVar(name string, state map[string]string) (string, error) {
	s.refresh()
	v, err := s.view.Lookup(name)
	if err != nil {
		return "", err
	}
	idx := make([]int, len(s.view.Variables))
	for _, fid := range s.view.Incident[v.ID()] {
		for _, id := range s.scopes[fid] {
			if id == v.ID() {
				continue
			}
			u := s.view.Variables[id]
			value, ok := state[u.Name()]
			if !ok {
				return "", fmt.Errorf("%w: state has no value for %q", factor.ErrUnknownVariable, u.Name())
			}
			if idx[id], err = u.Index(value); err != nil {
				return "", err
			}
		}
	}

	return v.Value(s.sample(v, idx)), nil
}

// Run draws a chain with Draw and reduces it with the selected estimator
// (CumulativeAverage unless WithEstimator says otherwise).
// The report carries the domains and the evidence active at the start.
func (s *Sampler) Run(niter, burnin int, opts ...RunOption) (*factor.Report, error) {
	rc := runConfig{estimator: CumulativeAverage}
	for _, opt := range opts {
		opt(&rc)
	}
	samples, err := s.draw(niter, burnin, rc)
	if err != nil {
		return nil, err
	}
	report := factor.NewReport(s.view)
	if report.Marginals, err = Marginals(samples, report.Domains, rc.estimator); err != nil {
		return nil, err
	}
	s.logger.Info("gibbs run finished",
		zap.String("run_id", report.RunID),
		zap.Int("niter", niter),
		zap.Int("burnin", burnin),
		zap.Int("variables", len(s.view.Variables)),
		zap.Int("evidence", len(s.view.Evidence)))

	return report, nil
}

// Draw runs burnin discarded steps followed by niter recorded steps and
// returns the recorded histories. Estimator options are ignored.
//
// Implementation:
//   - Stage 1: check 0 <= burnin < niter and a non-empty graph before any
//     random number is consumed (ErrPrecondition).
//   - Stage 2: refresh the graph view; resolve WithInitialState.
//   - Stage 3: uniform random initial state, then the overrides, then the
//     evidence values.
//   - Stage 4: burn-in, then recorded steps appending the full state.
//
// Complexity: O((burnin+niter) · Σ_{f∋v} |scope(f)| · |dom(v)|) plus
// O(niter · V) for the histories.
func (s *Sampler) Draw(niter, burnin int, opts ...RunOption) (Samples, error) {
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}

	return s.draw(niter, burnin, rc)
}

func (s *Sampler) draw(niter, burnin int, rc runConfig) (Samples, error) {
	if niter <= 0 || burnin < 0 || burnin >= niter {
		return nil, fmt.Errorf("%w: need 0 <= burnin < niter, got burnin=%d niter=%d",
			ErrPrecondition, burnin, niter)
	}
	s.refresh()
	vars := s.view.Variables
	if len(vars) == 0 {
		return nil, fmt.Errorf("%w: graph has no variables", ErrPrecondition)
	}
	pinned, err := s.resolve(rc.init)
	if err != nil {
		return nil, err
	}
	evidence, err := s.resolve(s.view.Evidence)
	if err != nil {
		return nil, err
	}

	state := make([]int, len(vars))
	for id, v := range vars {
		state[id] = s.rng.IntN(v.Size())
	}
	for id, d := range pinned {
		state[id] = d
	}
	for id, d := range evidence {
		state[id] = d
	}
	s.logger.Debug("gibbs chain started",
		zap.Int("niter", niter),
		zap.Int("burnin", burnin),
		zap.Int("pinned", len(pinned)))

	for i := 0; i < burnin; i++ {
		s.step(state)
	}
	samples := make(Samples, len(vars))
	for _, v := range vars {
		samples[v.Name()] = make([]int, 0, niter)
	}
	for i := 0; i < niter; i++ {
		s.step(state)
		for id, v := range vars {
			samples[v.Name()] = append(samples[v.Name()], state[id])
		}
	}

	return samples, nil
}

// step resamples one uniformly chosen variable in place.
func (s *Sampler) step(state []int) {
	v := s.view.Variables[s.rng.IntN(len(s.view.Variables))]
	state[v.ID()] = s.sample(v, state)
}

// sample draws an index for v from its full conditional given state.
func (s *Sampler) sample(v *factor.Variable, state []int) int {
	logp := s.logp[:v.Size()]
	for d := range logp {
		logp[d] = 0
	}
	for _, fid := range s.view.Incident[v.ID()] {
		f := s.view.Factors[fid]
		scope := s.scopes[fid]
		comb := s.comb[:len(scope)]
		pos := 0
		for i, id := range scope {
			comb[i] = state[id]
			if id == v.ID() {
				pos = i
			}
		}
		for d := range logp {
			comb[pos] = d
			logp[d] += f.LogWeight(comb)
		}
	}
	p := factor.Probabilities(nil, logp)

	return int(distuv.NewCategorical(p, s.rng).Rand())
}

// resolve maps name → value pairs to variable ID → domain index.
func (s *Sampler) resolve(named map[string]string) (map[int]int, error) {
	out := make(map[int]int, len(named))
	for name, value := range named {
		v, err := s.view.Lookup(name)
		if err != nil {
			return nil, err
		}
		d, err := v.Index(value)
		if err != nil {
			return nil, err
		}
		out[v.ID()] = d
	}

	return out, nil
}

// refresh re-snapshots the graph and resizes the scratch buffers.
func (s *Sampler) refresh() {
	s.view = s.graph.View()
	s.scopes = make([][]int, len(s.view.Factors))
	maxArity, maxSize := 0, 0
	for i, f := range s.view.Factors {
		s.scopes[i] = f.Scope()
		if len(s.scopes[i]) > maxArity {
			maxArity = len(s.scopes[i])
		}
	}
	for _, v := range s.view.Variables {
		if v.Size() > maxSize {
			maxSize = v.Size()
		}
	}
	s.logp = make([]float64, maxSize)
	s.comb = make([]int, maxArity)
}
