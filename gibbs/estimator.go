package gibbs

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/factor"
)

// Samples maps a variable name to its recorded history of domain indices,
// one entry per recorded step.
type Samples map[string][]int

// Len returns the number of recorded steps (0 for an empty set).
func (s Samples) Len() int {
	for _, h := range s {
		return len(h)
	}

	return 0
}

// Estimator reduces a 0/1 indicator history (1 where the sample equals a
// given value) to one or more estimates of that value's probability.
// It must return the same number of estimates for equally long inputs.
type Estimator func(indicator []float64) []float64

// CumulativeAverage returns the running mean: out[i] = mean(indicator[0..i]).
func CumulativeAverage(indicator []float64) []float64 {
	out := make([]float64, len(indicator))
	floats.CumSum(out, indicator)
	for i := range out {
		out[i] /= float64(i + 1)
	}

	return out
}

// Average returns the plain mean of the whole history as a single estimate.
func Average(indicator []float64) []float64 {
	return []float64{stat.Mean(indicator, nil)}
}

// Marginals turns sample histories into per-variable estimates:
// out[name][row][d] is est applied to the indicator history of domain index d.
//
// Errors: ErrPrecondition for an empty set or histories of different
// lengths, factor.ErrUnknownVariable for a name missing from domains,
// factor.ErrUnknownValue for an index outside its domain.
func Marginals(samples Samples, domains map[string][]string, est Estimator) (map[string][][]float64, error) {
	n := samples.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sample set", ErrPrecondition)
	}
	if est == nil {
		est = CumulativeAverage
	}
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string][][]float64, len(samples))
	indicator := make([]float64, n)
	for _, name := range names {
		hist := samples[name]
		if len(hist) != n {
			return nil, fmt.Errorf("%w: %q has %d samples, want %d", ErrPrecondition, name, len(hist), n)
		}
		domain, ok := domains[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", factor.ErrUnknownVariable, name)
		}
		var rows [][]float64
		for d := range domain {
			for i, x := range hist {
				if x < 0 || x >= len(domain) {
					return nil, fmt.Errorf("%w: %q index %d", factor.ErrUnknownValue, name, x)
				}
				indicator[i] = 0
				if x == d {
					indicator[i] = 1
				}
			}
			col := est(indicator)
			if rows == nil {
				rows = make([][]float64, len(col))
				for r := range rows {
					rows[r] = make([]float64, len(domain))
				}
			}
			if len(col) != len(rows) {
				return nil, fmt.Errorf("gibbs: estimator returned %d rows for %q, want %d", len(col), name, len(rows))
			}
			for r, p := range col {
				rows[r][d] = p
			}
		}
		out[name] = rows
	}

	return out, nil
}
