package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
)

var binary = []string{"0", "1"}

// buildPair creates X, Y with a prior on X and a pairwise factor X–Y.
func buildPair(t *testing.T) *factor.Graph {
	t.Helper()
	g := factor.New()
	_, err := g.AddVariable("X", binary)
	require.NoError(t, err)
	_, err = g.AddVariable("Y", []string{"a", "b", "c"})
	require.NoError(t, err)
	_, err = g.AddFactor([]string{"X"}, []factor.Row{
		{Values: []string{"0"}, Weight: 0.3},
		{Values: []string{"1"}, Weight: 0.7},
	})
	require.NoError(t, err)
	_, err = g.AddFactor([]string{"X", "Y"}, []factor.Row{
		{Values: []string{"0", "a"}, Weight: 1},
		{Values: []string{"1", "c"}, Weight: 2},
	})
	require.NoError(t, err)

	return g
}

func TestAddVariable_Duplicate(t *testing.T) {
	g := factor.New()
	_, err := g.AddVariable("X", binary)
	require.NoError(t, err)
	_, err = g.AddVariable("X", binary)
	assert.ErrorIs(t, err, factor.ErrDuplicateVariable)
	assert.Equal(t, 1, g.NumVariables())
}

func TestAddVariable_InvalidInput(t *testing.T) {
	g := factor.New()
	_, err := g.AddVariable("", binary)
	assert.ErrorIs(t, err, factor.ErrEmptyName)
	_, err = g.AddVariable("X", nil)
	assert.ErrorIs(t, err, factor.ErrInvalidDomain)
	_, err = g.AddVariable("X", []string{"a", "a"})
	assert.ErrorIs(t, err, factor.ErrInvalidDomain)
	assert.Equal(t, 0, g.NumVariables())
}

func TestVariable_DomainMapping(t *testing.T) {
	g := factor.New()
	v, err := g.AddVariable("Coin", []string{"H", "T"})
	require.NoError(t, err)

	assert.Equal(t, 0, v.ID())
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, []string{"H", "T"}, v.Domain())
	i, err := v.Index("T")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "T", v.Value(1))
	_, err = v.Index("X")
	assert.ErrorIs(t, err, factor.ErrUnknownValue)

	// Domain returns a copy.
	d := v.Domain()
	d[0] = "mutated"
	assert.Equal(t, "H", v.Value(0))
}

func TestAddFactor_UnknownVariable(t *testing.T) {
	g := factor.New()
	_, err := g.AddVariable("X", binary)
	require.NoError(t, err)
	_, err = g.AddFactor([]string{"X", "Nope"}, nil)
	assert.ErrorIs(t, err, factor.ErrUnknownVariable)
	assert.Equal(t, 0, g.NumFactors())
	assert.Empty(t, g.Incident(0))
}

func TestAddFactor_InvalidScopeAndTable(t *testing.T) {
	g := factor.New()
	_, err := g.AddVariable("X", binary)
	require.NoError(t, err)

	_, err = g.AddFactor(nil, nil)
	assert.ErrorIs(t, err, factor.ErrInvalidScope)
	_, err = g.AddFactor([]string{"X", "X"}, nil)
	assert.ErrorIs(t, err, factor.ErrInvalidScope)
	_, err = g.AddFactor([]string{"X"}, []factor.Row{{Values: []string{"0", "1"}, Weight: 1}})
	assert.ErrorIs(t, err, factor.ErrInvalidTable)
	_, err = g.AddFactor([]string{"X"}, []factor.Row{{Values: []string{"2"}, Weight: 1}})
	assert.ErrorIs(t, err, factor.ErrUnknownValue)
	_, err = g.AddFactor([]string{"X"}, []factor.Row{{Values: []string{"0"}, Weight: -1}})
	assert.ErrorIs(t, err, factor.ErrInvalidWeight)
	_, err = g.AddFactor([]string{"X"}, []factor.Row{{Values: []string{"0"}, Weight: math.NaN()}})
	assert.ErrorIs(t, err, factor.ErrInvalidWeight)
	assert.Equal(t, 0, g.NumFactors())
}

func TestAddFactor_AdjacencyOrder(t *testing.T) {
	g := buildPair(t)

	assert.Equal(t, 2, g.NumFactors())
	assert.Equal(t, []int{0, 1}, g.Incident(0))
	assert.Equal(t, []int{1}, g.Incident(1))

	pair := g.Factor(1)
	require.NotNil(t, pair)
	assert.Equal(t, "F_XY", pair.Name())
	assert.Equal(t, []int{0, 1}, pair.Scope())
	assert.Equal(t, []string{"X", "Y"}, pair.ScopeNames())
	assert.Equal(t, []int{2, 3}, pair.Sizes())
	assert.Equal(t, 1, pair.Position(1))
	assert.Equal(t, -1, g.Factor(0).Position(1))
	assert.Nil(t, g.Factor(7))
	assert.Nil(t, g.Variable(-1))
}

func TestAddFactor_DenseLogTable(t *testing.T) {
	g := buildPair(t)
	pair := g.Factor(1)

	require.Equal(t, 6, pair.Len())
	assert.InDelta(t, 0.0, pair.LogWeight([]int{0, 0}), 1e-12)
	assert.InDelta(t, math.Log(2), pair.LogWeight([]int{1, 2}), 1e-12)
	// Omitted combinations weigh 0 and are stored as the floor.
	assert.Equal(t, factor.DefaultLogFloor, pair.LogWeight([]int{0, 1}))
	assert.Equal(t, factor.DefaultLogFloor, pair.LogWeight([]int{1, 0}))

	// Last scope position varies fastest.
	comb := pair.Decode(5, nil)
	assert.Equal(t, []int{1, 2}, comb)
	assert.Equal(t, pair.LogWeight(comb), pair.LogWeightAt(5))
	assert.Equal(t, []int{0, 1}, pair.Decode(1, comb))
}

func TestAddFactor_ZeroWeightUsesFloor(t *testing.T) {
	g := factor.New(factor.WithLogFloor(-50))
	_, err := g.AddVariable("X", binary)
	require.NoError(t, err)
	f, err := g.AddFactor([]string{"X"}, []factor.Row{
		{Values: []string{"0"}, Weight: 0},
		{Values: []string{"1"}, Weight: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, -50.0, f.LogWeightAt(0))
	assert.Equal(t, 0.0, f.LogWeightAt(1))
	assert.False(t, math.IsInf(f.LogWeightAt(0), 0))
	assert.Equal(t, -50.0, g.LogFloor())
}

func TestWithLogFloor_PanicsOnNonNegative(t *testing.T) {
	assert.Panics(t, func() { factor.WithLogFloor(0) })
	assert.Panics(t, func() { factor.WithLogFloor(math.Inf(-1)) })
	assert.Panics(t, func() { factor.WithLogger(nil) })
}

func TestVariableByName(t *testing.T) {
	g := buildPair(t)
	v, err := g.VariableByName("Y")
	require.NoError(t, err)
	assert.Equal(t, 1, v.ID())
	_, err = g.VariableByName("Z")
	assert.ErrorIs(t, err, factor.ErrUnknownVariable)

	names := make([]string, 0)
	for _, vv := range g.Variables() {
		names = append(names, vv.Name())
	}
	assert.Equal(t, []string{"X", "Y"}, names)
	assert.Equal(t, map[string][]string{"X": binary, "Y": {"a", "b", "c"}}, g.Domains())
}

func TestClone_Independent(t *testing.T) {
	g := buildPair(t)
	clone := g.Clone()

	_, err := clone.AddVariable("Z", binary)
	require.NoError(t, err)
	require.NoError(t, clone.Condition(map[string]string{"Y": "b"}))

	assert.Equal(t, 2, g.NumVariables())
	assert.Equal(t, 2, g.NumFactors())
	assert.Empty(t, g.Evidence())
	assert.Equal(t, 3, clone.NumVariables())
	assert.Equal(t, 3, clone.NumFactors())
	assert.Equal(t, []int{1}, g.Incident(1))
	assert.Equal(t, []int{1, 2}, clone.Incident(1))
}

func TestView_Snapshot(t *testing.T) {
	g := buildPair(t)
	view := g.View()

	require.NoError(t, g.Condition(map[string]string{"Y": "a"}))

	assert.Len(t, view.Factors, 2)
	assert.Empty(t, view.Evidence)
	v, err := view.Lookup("Y")
	require.NoError(t, err)
	assert.Equal(t, 1, v.ID())
	_, err = view.Lookup("Q")
	assert.ErrorIs(t, err, factor.ErrUnknownVariable)
	assert.Len(t, g.View().Factors, 3)
}
