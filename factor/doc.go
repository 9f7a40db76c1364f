// Package factor provides the discrete factor-graph data model shared by the
// inference engines of lvbayes.
//
// A factor graph G = (V, F) is bipartite: variable nodes carry a finite,
// ordered domain and factor nodes carry a non-negative table over an ordered
// scope of variables. The joint distribution is proportional to the product
// of all factor tables.
//
// Representation:
//
//   - Arena storage: variables and factors live in slices addressed by stable
//     integer IDs; adjacency stores IDs, never pointers, so the graph has no
//     reference cycles and can be cloned or inspected freely.
//   - Domains are mapped to indices 0..k-1; Variable.Domain() recovers the
//     caller's original values in declared order.
//   - Tables are dense and kept in log space. A weight of exactly 0 (and any
//     combination the caller omitted) is stored as the graph's log floor
//     (DefaultLogFloor = -1e6) instead of -Inf, so log-sum-exp arithmetic in
//     the engines always stays finite.
//   - Factors are immutable. Condition replaces unary factors wholesale.
//
// Configuration Options (Option):
//
//	– WithLogFloor(floor float64)   log-weight used for zero entries (must be < 0)
//	– WithLogger(*zap.Logger)       structured logging for mutations (default: no-op)
//
// Core Methods:
//
//	AddVariable(name string, domain []string) (*Variable, error)   // O(k)
//	AddFactor(scope []string, rows []Row) (*Factor, error)          // O(Π|dom| + rows)
//	Condition(obs map[string]string) error                          // O(Σ deg(v))
//	View() View                                                     // O(V + F) snapshot for engines
//	Clone() *Graph                                                  // O(V + F)
//
// Errors:
//
//	ErrEmptyName         – zero-length variable name
//	ErrInvalidDomain     – empty domain or repeated domain value
//	ErrDuplicateVariable – variable name already defined
//	ErrUnknownVariable   – scope or observation names an undeclared variable
//	ErrUnknownValue      – table row or observation uses a value outside the domain
//	ErrInvalidScope      – empty scope or a variable repeated inside one scope
//	ErrInvalidTable      – table row arity differs from the scope length
//	ErrInvalidWeight     – negative, NaN or infinite weight
//	ErrSnapshotRange     – Report snapshot index out of range
//
// Inference results of both engines are returned as *Report: one marginal
// snapshot per iteration (belief propagation) or per recorded sample (Gibbs),
// together with the variable domains and the active evidence.
package factor
