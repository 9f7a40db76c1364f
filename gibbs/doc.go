// Package gibbs approximates the marginals of a factor.Graph by single-site
// Gibbs sampling.
//
// What:
//
//   - State: one domain index per variable. Initial values are drawn
//     uniformly at random, then overridden by WithInitialState, then pinned
//     to the graph's evidence.
//   - Step: pick one variable uniformly at random, compute its full
//     conditional from the incident factors only (the Markov blanket) and
//     draw a new value from it. All other variables carry forward.
//   - Run: burnin discarded steps, then niter recorded steps; after every
//     recorded step the whole state is appended to the histories.
//   - Estimators reduce each per-value indicator history: CumulativeAverage
//     (one row per recorded step) or Average (a single row).
//
// Randomness comes from an explicit *rand.Rand (math/rand/v2), so runs are
// reproducible for a fixed seed. The chain is inherently sequential; a
// Sampler is not safe for concurrent use.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrPrecondition   burnin < 0, niter <= 0, burnin >= niter, empty graph,
//     or an empty sample set passed to Marginals
//   - factor.ErrUnknownVariable / factor.ErrUnknownValue  bad state or
//     observation names and values
package gibbs
