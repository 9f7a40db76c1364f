package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LVBAYES_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestBP_EarthquakeEvidence(t *testing.T) {
	out, err := execute(t, "bp", "--network", "earthquake", "--evidence", "Phone=1", "--iterations", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Burglar=0\t0.5047\n")
	assert.Contains(t, out, "Phone=1\t1.0000\n")
	// Two lines per binary variable, in declaration order.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "Earthquake=0\t"))

	out, err = execute(t, "bp", "--evidence", "Phone=1", "--evidence", "Radio=1")
	require.NoError(t, err)
	assert.Contains(t, out, "Burglar=0\t0.9173\n")
}

func TestBP_Trace(t *testing.T) {
	out, err := execute(t, "bp", "--network", "vstruct", "--evidence", "Z=0", "--iterations", "2", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "0\tX=0\t0.5000\n")
	assert.Contains(t, out, "1\tX=0\t0.0010\n")
	assert.Contains(t, out, "2\tX=0\t0.3325\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3*3*2)
}

func TestBP_ModelFile(t *testing.T) {
	out, err := execute(t, "bp", "--model", "../../model/testdata/pairwise.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "A=off\t0.7500\n")
	assert.Contains(t, out, "B=off\t0.5833\n")
}

func TestGibbs_Chain(t *testing.T) {
	out, err := execute(t, "gibbs", "--network", "chain", "--samples", "20000", "--burnin", "500", "--seed", "3", "--estimator", "mean")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "A=0\t0.5") || strings.HasPrefix(lines[0], "A=0\t0.6"), lines[0])
}

func TestGibbs_Errors(t *testing.T) {
	_, err := execute(t, "gibbs", "--network", "chain", "--samples", "10", "--burnin", "10")
	assert.Error(t, err)
	_, err = execute(t, "gibbs", "--estimator", "median")
	assert.ErrorContains(t, err, "unknown estimator")
}

func TestInputErrors(t *testing.T) {
	_, err := execute(t, "bp", "--network", "nope")
	assert.Error(t, err)
	_, err = execute(t, "bp", "--model", "x.yaml", "--network", "chain")
	assert.ErrorContains(t, err, "mutually exclusive")
	_, err = execute(t, "bp", "--evidence", "Phone")
	assert.ErrorContains(t, err, "invalid evidence")
	_, err = execute(t, "bp", "--evidence", "Nope=1")
	assert.Error(t, err)
	_, err = execute(t, "bp", "--iterations", "-1")
	assert.Error(t, err)
}

func TestVersionAndNetworks(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvbayes v"+version+" ("+commit+")\n", out)

	out, err = execute(t, "networks")
	require.NoError(t, err)
	assert.Equal(t, "chain\nearthquake\nvstruct\n", out)
}
