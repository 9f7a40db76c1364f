package bayesnet

import (
	"fmt"
	"math"
	"strings"
)

// CPTTolerance is the allowed deviation of a CPT row group's sum from 1.
const CPTTolerance = 1e-10

// Validate checks that the network is acyclic, that every variable has a CPT,
// and that each CPT is a conditional distribution: for every assignment of
// the parents, the child probabilities lie in [0,1] and sum to 1.
func (n *Network) Validate() error {
	if _, err := n.TopologicalOrder(); err != nil {
		return err
	}
	for _, name := range n.order {
		rows, ok := n.cpts[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingCPT, name)
		}
		groups := make(map[string]float64)
		keys := make([]string, 0)
		for i, row := range rows {
			p := row.Weight
			if p < 0 || p > 1 || math.IsNaN(p) {
				return fmt.Errorf("%w: %q row %d probability %v", ErrInvalidCPT, name, i, p)
			}
			key := strings.Join(row.Values[:len(row.Values)-1], "\x00")
			if _, seen := groups[key]; !seen {
				keys = append(keys, key)
			}
			groups[key] += p
		}
		for _, key := range keys {
			if math.Abs(groups[key]-1) > CPTTolerance {
				return fmt.Errorf("%w: %q given (%s) sums to %v", ErrInvalidCPT, name,
					strings.ReplaceAll(key, "\x00", ", "), groups[key])
			}
		}
	}

	return nil
}
