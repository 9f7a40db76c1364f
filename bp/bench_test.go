package bp_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvbayes/bp"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/internal/networks"
)

// pairwiseChain builds n binary variables linked by pairwise agreement factors.
func pairwiseChain(b *testing.B, n int) *factor.Graph {
	b.Helper()
	g := factor.New()
	agree := []factor.Row{
		{Values: []string{"0", "0"}, Weight: 0.9},
		{Values: []string{"0", "1"}, Weight: 0.1},
		{Values: []string{"1", "0"}, Weight: 0.1},
		{Values: []string{"1", "1"}, Weight: 0.9},
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddVariable("V"+strconv.Itoa(i), networks.Binary); err != nil {
			b.Fatal(err)
		}
		if i == 0 {
			continue
		}
		scope := []string{"V" + strconv.Itoa(i-1), "V" + strconv.Itoa(i)}
		if _, err := g.AddFactor(scope, agree); err != nil {
			b.Fatal(err)
		}
	}
	if err := g.Condition(map[string]string{"V0": "1"}); err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkRun_Earthquake(b *testing.B) {
	g := networks.Graph(networks.Earthquake())
	if err := g.Condition(map[string]string{"Phone": "1"}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bp.Run(g, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_PairwiseChain(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := pairwiseChain(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := bp.Run(g, 20); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
