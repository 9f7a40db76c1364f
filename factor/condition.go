// File: condition.go
// Role: evidence conditioning by unary indicator-factor injection.
//
// Evidence is not a separate code path in the engines: an observed variable
// simply gains (or has replaced) a unary factor that is log 1 at the observed
// value and the log floor everywhere else.

package factor

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Condition fixes each named variable to its observed value.
//
// Implementation:
//   - Stage 1: validate every observation before mutating anything
//     (ErrUnknownVariable, ErrUnknownValue).
//   - Stage 2: for each name in sorted order, replace the table of every
//     existing factor whose scope is exactly {name} with the indicator table,
//     keeping its ID and adjacency. Only when no such factor exists is a new
//     unary factor added.
//   - Stage 3: merge the observation into the evidence set.
//
// Behavior highlights:
//   - Idempotent: conditioning twice on the same observations leaves the
//     factor count and every table unchanged.
//   - Re-observing a variable with a different value overwrites the old one.
//
// Complexity: O(Σ_{v∈obs} (deg(v) + |dom(v)|)).
func (g *Graph) Condition(obs map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(obs))
	idx := make(map[string]int, len(obs))
	for name, value := range obs {
		id, ok := g.byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		i, err := g.variables[id].Index(value)
		if err != nil {
			return err
		}
		names = append(names, name)
		idx[name] = i
	}
	sort.Strings(names)

	for _, name := range names {
		v := g.variables[g.byName[name]]
		replaced := 0
		for _, fid := range g.incident[v.id] {
			if len(g.factors[fid].scope) != 1 {
				continue
			}
			g.factors[fid] = newIndicator(fid, v, idx[name], g.logFloor)
			replaced++
		}
		if replaced == 0 {
			g.attach(newIndicator(len(g.factors), v, idx[name], g.logFloor))
		}
		g.evidence[name] = obs[name]
		g.logger.Debug("evidence applied",
			zap.String("variable", name),
			zap.String("value", obs[name]),
			zap.Int("replaced", replaced))
	}

	return nil
}
