package networks

import (
	"math"

	"github.com/katalvlaran/lvbayes/factor"
)

// Exact computes every variable's marginal by enumerating the full joint
// distribution (normalized product of all factor weights). Exponential in the
// number of variables; intended as a reference for small graphs only.
func Exact(g *factor.Graph) map[string][]float64 {
	view := g.View()
	n := len(view.Variables)
	acc := make([][]float64, n)
	for i, v := range view.Variables {
		acc[i] = make([]float64, v.Size())
		for d := range acc[i] {
			acc[i][d] = math.Inf(-1)
		}
	}

	assign := make([]int, n)
	comb := make([]int, 0, n)
	for {
		logp := 0.0
		for _, f := range view.Factors {
			comb = comb[:0]
			for _, id := range f.Scope() {
				comb = append(comb, assign[id])
			}
			logp += f.LogWeight(comb)
		}
		for i, d := range assign {
			acc[i][d] = factor.LogAddExp(acc[i][d], logp)
		}
		// Odometer increment, last variable fastest.
		i := n - 1
		for ; i >= 0; i-- {
			assign[i]++
			if assign[i] < view.Variables[i].Size() {
				break
			}
			assign[i] = 0
		}
		if i < 0 {
			break
		}
	}

	out := make(map[string][]float64, n)
	for i, v := range view.Variables {
		out[v.Name()] = factor.Probabilities(nil, acc[i])
	}

	return out
}
