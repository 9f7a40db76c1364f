// Package networks bundles small reference Bayesian networks and a
// brute-force enumeration of exact marginals, shared by tests, examples and
// the command-line tool.
package networks

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/factor"
)

// Binary is the {0,1} domain used by every bundled network.
var Binary = []string{"0", "1"}

var registry = map[string]func() *bayesnet.Network{
	"vstruct":    VStruct,
	"earthquake": Earthquake,
	"chain":      Chain,
}

// Names lists the bundled networks, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ByName returns a fresh copy of the named network.
func ByName(name string) (*bayesnet.Network, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("networks: unknown network %q (have %v)", name, Names())
	}

	return build(), nil
}

func row(p float64, values ...string) factor.Row {
	return factor.Row{Values: values, Weight: p}
}

// mustAdd panics on construction errors; the bundled tables are static.
func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}

// VStruct is the v-structure X → Z ← Y with near-certain parents.
func VStruct() *bayesnet.Network {
	n := bayesnet.New()
	for _, v := range []string{"X", "Y", "Z"} {
		mustAdd(n.AddVariable(v, Binary))
	}
	mustAdd(n.AddCPT(nil, "X", []factor.Row{row(0.001, "0"), row(0.999, "1")}))
	mustAdd(n.AddCPT(nil, "Y", []factor.Row{row(0.001, "0"), row(0.999, "1")}))
	mustAdd(n.AddCPT([]string{"X", "Y"}, "Z", []factor.Row{
		row(0.99, "0", "0", "0"), row(0.01, "0", "0", "1"),
		row(0.99, "0", "1", "0"), row(0.01, "0", "1", "1"),
		row(0.99, "1", "0", "0"), row(0.01, "1", "0", "1"),
		row(0.001, "1", "1", "0"), row(0.999, "1", "1", "1"),
	}))

	return n
}

// Earthquake is the burglar-alarm network: Earthquake → Radio,
// Earthquake → Alarm ← Burglar, Alarm → Phone.
func Earthquake() *bayesnet.Network {
	n := bayesnet.New()
	for _, v := range []string{"Earthquake", "Burglar", "Radio", "Alarm", "Phone"} {
		mustAdd(n.AddVariable(v, Binary))
	}
	mustAdd(n.AddCPT(nil, "Earthquake", []factor.Row{row(0.999, "0"), row(0.001, "1")}))
	mustAdd(n.AddCPT(nil, "Burglar", []factor.Row{row(0.999, "0"), row(0.001, "1")}))
	mustAdd(n.AddCPT([]string{"Burglar", "Earthquake"}, "Alarm", []factor.Row{
		row(0.999, "0", "0", "0"), row(0.001, "0", "0", "1"),
		row(0.00999, "1", "0", "0"), row(0.99001, "1", "0", "1"),
		row(0.98901, "0", "1", "0"), row(0.01099, "0", "1", "1"),
		row(0.0098901, "1", "1", "0"), row(0.9901099, "1", "1", "1"),
	}))
	mustAdd(n.AddCPT([]string{"Alarm"}, "Phone", []factor.Row{
		row(1, "0", "0"), row(0, "0", "1"),
		row(0.5, "1", "0"), row(0.5, "1", "1"),
	}))
	mustAdd(n.AddCPT([]string{"Earthquake"}, "Radio", []factor.Row{
		row(1, "0", "0"), row(0, "0", "1"),
		row(0.2, "1", "0"), row(0.8, "1", "1"),
	}))

	return n
}

// Chain is A → B → C with moderate probabilities; it mixes quickly under
// Gibbs sampling.
func Chain() *bayesnet.Network {
	n := bayesnet.New()
	for _, v := range []string{"A", "B", "C"} {
		mustAdd(n.AddVariable(v, Binary))
	}
	mustAdd(n.AddCPT(nil, "A", []factor.Row{row(0.6, "0"), row(0.4, "1")}))
	mustAdd(n.AddCPT([]string{"A"}, "B", []factor.Row{
		row(0.7, "0", "0"), row(0.3, "0", "1"),
		row(0.2, "1", "0"), row(0.8, "1", "1"),
	}))
	mustAdd(n.AddCPT([]string{"B"}, "C", []factor.Row{
		row(0.9, "0", "0"), row(0.1, "0", "1"),
		row(0.3, "1", "0"), row(0.7, "1", "1"),
	}))

	return n
}

// Graph converts a bundled network, panicking on conversion errors.
func Graph(n *bayesnet.Network, opts ...factor.Option) *factor.Graph {
	g, err := n.FactorGraph(opts...)
	if err != nil {
		panic(err)
	}

	return g
}
