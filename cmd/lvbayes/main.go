// Package main provides the lvbayes CLI: approximate marginals of a Bayesian
// network or factor graph by belief propagation or Gibbs sampling.
package main

import (
	"os"

	"github.com/katalvlaran/lvbayes/internal/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	_ = config.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
