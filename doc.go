// Package lvbayes is an in-memory toolkit for approximate inference over
// discrete graphical models: build a factor graph (directly or from a
// Bayesian network), condition it on evidence, and read per-variable
// marginals.
//
// What is inside?
//
//	factor/   — variables, dense log-weight factors, the arena Graph,
//	            evidence conditioning, log-space helpers, inference reports
//	bp/       — sum-product belief propagation in the log domain with a
//	            synchronous schedule and per-iteration snapshots
//	gibbs/    — single-site Gibbs sampling with cumulative-average and
//	            plain-average marginal estimators
//	bayesnet/ — directed networks with CPTs, topological order, validation,
//	            conversion into a factor graph
//	model/    — YAML model files
//	cmd/lvbayes — command-line front end for both engines
//
// Why lvbayes?
//
//   - Stable integer IDs instead of pointer cycles: graphs are cheap to
//     snapshot, clone and test
//   - Messages belong to the engine, not the graph: several runs can share
//     one graph
//   - Zero weights sit on a finite log floor, so log-sum-exp never meets -Inf
//   - Reproducible sampling through explicit math/rand/v2 sources
//
// Quick example (explaining away):
//
//	X ──► Z ◄── Y      P(X=1) = P(Y=1) = 0.999, Z ≈ X AND Y
//
//	observing Z=0 drops P(X=0) from 0.001 to ≈ 0.333.
//
//	go get github.com/katalvlaran/lvbayes
package lvbayes
