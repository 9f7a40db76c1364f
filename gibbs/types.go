// SPDX-License-Identifier: MIT
// Package: lvbayes/gibbs
//
// types.go — sentinel errors and options for samplers and runs.
//
// Option policy:
//   • Sampler options panic on meaningless input (nil RNG, nil logger).
//   • Run options are validated when the run starts and surface as errors.

package gibbs

import (
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"
)

// DefaultSeed seeds the sampler's source when neither WithRand nor WithSeed
// is given.
const DefaultSeed uint64 = 1

var (
	// ErrGraphNil is returned when a nil *factor.Graph is passed to New.
	ErrGraphNil = errors.New("gibbs: graph is nil")

	// ErrPrecondition indicates invalid run bounds or an empty sample set.
	ErrPrecondition = errors.New("gibbs: precondition violated")
)

// Option configures a Sampler.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// WithRand makes the sampler draw from r. The caller keeps ownership of r's
// seeding policy. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gibbs: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a PCG source from seed; the same seed replays the same
// chain.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = newRand(seed)
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("gibbs: WithLogger(nil)")
	}

	return func(c *config) {
		c.logger = l
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RunOption configures a single Run or Draw call.
type RunOption func(*runConfig)

type runConfig struct {
	init      map[string]string
	estimator Estimator
}

// WithInitialState overrides the random initial value of the named
// variables. Names and values are checked when the run starts.
func WithInitialState(state map[string]string) RunOption {
	cp := make(map[string]string, len(state))
	for k, v := range state {
		cp[k] = v
	}

	return func(c *runConfig) {
		c.init = cp
	}
}

// WithEstimator selects the reduction applied to the sample histories.
// Panics on nil.
func WithEstimator(est Estimator) RunOption {
	if est == nil {
		panic("gibbs: WithEstimator(nil)")
	}

	return func(c *runConfig) {
		c.estimator = est
	}
}
