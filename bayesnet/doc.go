// Package bayesnet models a directed Bayesian network (variables, parent
// edges and one conditional probability table per variable) and converts it
// into a factor.Graph for inference.
//
// What:
//
//   - AddVariable / AddCPT build the network; each CPT row lists the parent
//     values followed by the child value, with its conditional probability.
//   - TopologicalOrder: depth-first colouring (White, Gray, Black) producing a
//     parents-before-children order, ErrCycleDetected on a back edge.
//   - Ancestors: the given variables plus everything they descend from.
//   - Validate: every CPT row group sums to 1 and every variable has a CPT.
//   - FactorGraph: one factor per CPT with scope (parents..., child).
//
// Errors:
//
//   - ErrDuplicateVariable  variable name already defined
//   - ErrUnknownVariable    CPT or query names an undeclared variable
//   - ErrDuplicateCPT       a second CPT for the same child
//   - ErrInvalidCPT         malformed CPT (arity, self-parent, repeated parent, bad probabilities)
//   - ErrMissingCPT         Validate found a variable without a CPT
//   - ErrCycleDetected      the parent relation is not acyclic
//
// Complexity:
//
//   - TopologicalOrder, Ancestors: O(V + E)
//   - Validate: O(Σ rows)
package bayesnet
