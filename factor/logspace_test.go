package factor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
)

func TestLogWeight(t *testing.T) {
	assert.Equal(t, -7.0, factor.LogWeight(0, -7))
	assert.InDelta(t, math.Log(0.25), factor.LogWeight(0.25, -7), 1e-15)
}

func TestLogAddExp(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0, 0}, {math.Log(0.2), math.Log(0.3)}, {-1000, -1001}, {5, -5},
	}
	for _, c := range cases {
		want := math.Log(math.Exp(c.a) + math.Exp(c.b))
		if math.IsInf(want, 0) {
			want = math.Max(c.a, c.b) + math.Log1p(math.Exp(-math.Abs(c.a-c.b)))
		}
		assert.InDelta(t, want, factor.LogAddExp(c.a, c.b), 1e-12)
		assert.InDelta(t, want, factor.LogAddExp(c.b, c.a), 1e-12)
	}
	assert.Equal(t, 3.0, factor.LogAddExp(math.Inf(-1), 3))
	assert.Equal(t, 3.0, factor.LogAddExp(3, math.Inf(-1)))
}

func TestNormalize_SumsToOne(t *testing.T) {
	logv := []float64{math.Log(2), math.Log(6), factor.DefaultLogFloor}
	p := factor.Probabilities(nil, logv)

	require.Len(t, p, 3)
	assert.InDelta(t, 0.25, p[0], 1e-12)
	assert.InDelta(t, 0.75, p[1], 1e-12)
	assert.Equal(t, 0.0, p[2])
	assert.Equal(t, math.Log(2), logv[0], "input must not be modified")

	// In-place normalization.
	n := factor.Normalize(logv, logv)
	assert.InDelta(t, math.Log(0.25), n[0], 1e-12)
	assert.InDelta(t, math.Log(0.25), logv[0], 1e-12)
}

func TestNormalize_UniformFromZeros(t *testing.T) {
	p := factor.Probabilities(nil, make([]float64, 4))
	for _, x := range p {
		assert.InDelta(t, 0.25, x, 1e-15)
	}
}

func TestReport_Accessors(t *testing.T) {
	g := buildPair(t)
	require.NoError(t, g.Condition(map[string]string{"X": "1"}))
	r := factor.NewReport(g.View())

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, map[string]string{"X": "1"}, r.Evidence)

	r.Append("Y", []float64{0.2, 0.3, 0.5})
	r.Append("Y", []float64{0.1, 0.1, 0.8})
	assert.Equal(t, 2, r.Len("Y"))

	d, err := r.Final("Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, d.Domain)
	assert.InDelta(t, 0.8, d.Prob("c"), 1e-15)
	assert.Equal(t, 0.0, d.Prob("zzz"))
	assert.Equal(t, "c", d.Argmax())
	assert.InDelta(t, 1.0, d.Sum(), 1e-12)

	first, err := r.At("Y", 0)
	require.NoError(t, err)
	assert.Equal(t, "c", first.Argmax())

	_, err = r.At("Y", 2)
	assert.ErrorIs(t, err, factor.ErrSnapshotRange)
	_, err = r.Final("Nope")
	assert.ErrorIs(t, err, factor.ErrUnknownVariable)
}
