// File: report.go
// Role: inference results in the caller's original value space.

package factor

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// Distribution is a probability vector over a variable's domain, in declared
// domain order.
type Distribution struct {
	Domain []string
	P      []float64
}

// Prob returns the probability of value, or 0 for values outside the domain.
func (d Distribution) Prob(value string) float64 {
	for i, v := range d.Domain {
		if v == value {
			return d.P[i]
		}
	}

	return 0
}

// Sum returns the total probability mass (1 up to rounding).
func (d Distribution) Sum() float64 { return floats.Sum(d.P) }

// Argmax returns the most probable domain value; ties go to the first one.
func (d Distribution) Argmax() string { return d.Domain[floats.MaxIdx(d.P)] }

// Report is the output of one inference run.
//
// Marginals[name][i] is the i-th snapshot for variable name: one probability
// per domain index. Belief propagation records iterations+1 snapshots (the
// uniform starting point first); Gibbs sampling records one per estimator row.
type Report struct {
	// RunID identifies the run in logs and downstream reporting.
	RunID string

	Marginals map[string][][]float64
	Domains   map[string][]string
	Evidence  map[string]string
}

// NewReport prepares an empty report carrying the domains and evidence of v.
func NewReport(v View) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Marginals: make(map[string][][]float64, len(v.Variables)),
		Domains:   v.Domains(),
		Evidence:  copyEvidence(v.Evidence),
	}
}

// Append records a snapshot for name. p is copied.
func (r *Report) Append(name string, p []float64) {
	r.Marginals[name] = append(r.Marginals[name], append([]float64(nil), p...))
}

// Len returns the number of snapshots recorded for name.
func (r *Report) Len(name string) int { return len(r.Marginals[name]) }

// At returns snapshot i of name as a Distribution.
// Errors: ErrUnknownVariable, ErrSnapshotRange.
func (r *Report) At(name string, i int) (Distribution, error) {
	snaps, ok := r.Marginals[name]
	if !ok {
		return Distribution{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	if i < 0 || i >= len(snaps) {
		return Distribution{}, fmt.Errorf("%w: %d not in [0,%d)", ErrSnapshotRange, i, len(snaps))
	}

	return Distribution{
		Domain: append([]string(nil), r.Domains[name]...),
		P:      append([]float64(nil), snaps[i]...),
	}, nil
}

// Final returns the last snapshot of name.
func (r *Report) Final(name string) (Distribution, error) {
	return r.At(name, r.Len(name)-1)
}
