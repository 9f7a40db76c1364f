// Package bp implements log-domain sum-product belief propagation on a
// factor.Graph.
//
// What:
//
//   - Synchronous (Jacobi-style) schedule: every iteration first lets every
//     variable send to each incident factor, then every factor send to each
//     incident variable, then records a marginal snapshot of every variable.
//     Phases never interleave.
//   - Variable → factor: sum of the log-messages received from all OTHER
//     incident factors, normalized by log-sum-exp.
//   - Factor → variable at scope position t: for every table cell,
//     log w + Σ_{i≠t} msg_i[comb_i], combined by log-sum-exp into slot comb_t.
//     Not normalized.
//   - Marginal: normalized product (log sum) of all incoming factor messages.
//
// Why:
//   - Exact marginals on tree-structured graphs after as many iterations as the
//     graph diameter; on loopy graphs the same fixed schedule runs without a
//     convergence guarantee and the per-iteration snapshots let the caller
//     observe oscillation or convergence.
//
// Messages are owned by the Engine, not by the graph: Run resets them,
// Marginal reads them. The graph is never mutated by propagation.
//
// Evidence needs no special handling: factor.Graph.Condition injects unary
// indicator factors whose zero entries sit at the finite log floor.
//
// Complexity (per iteration):
//
//   - Time:   O(Σ_v deg(v)² · |dom(v)| + Σ_f arity(f) · |table(f)| · arity(f))
//   - Memory: O(Σ_f Σ_{v∈scope(f)} |dom(v)|) message storage
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrBadIterations     negative iteration count
//   - factor.ErrUnknownVariable  Marginal/Condition on an undeclared name
//   - hook errors          propagated from WithOnIteration
package bp
