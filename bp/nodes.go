// File: nodes.go
// Role: the two node roles of the bipartite graph and their message rules.
//
// Both roles satisfy node: they know their neighbors, compute an outgoing
// message for one neighbor, and store an incoming message. The engine moves
// messages between them; nodes never reference each other directly.

package bp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/factor"
)

// link addresses one end of an edge: the node index on the other side and
// the slot under which this edge is known there.
type link struct {
	node int
	slot int
}

// node is the capability shared by variable and factor nodes.
type node interface {
	// neighbors returns one link per outgoing edge, indexed by local slot.
	neighbors() []link
	// sendTo computes the log-message for the neighbor at slot into dst.
	sendTo(slot int, dst []float64) []float64
	// receive stores a copy of msg as the message arriving on slot.
	receive(slot int, msg []float64)
}

// variableNode: links[slot] = (factor index, scope position of this variable);
// inbox[slot] = last message from that factor.
type variableNode struct {
	v     *factor.Variable
	links []link
	inbox [][]float64
}

func (n *variableNode) neighbors() []link { return n.links }

func (n *variableNode) receive(slot int, msg []float64) { copy(n.inbox[slot], msg) }

// sendTo sums the messages from every other incident factor and normalizes.
// The message from the target itself is excluded.
func (n *variableNode) sendTo(slot int, dst []float64) []float64 {
	dst = dst[:n.v.Size()]
	for i := range dst {
		dst[i] = 0
	}
	for s, msg := range n.inbox {
		if s == slot {
			continue
		}
		floats.Add(dst, msg)
	}

	return factor.Normalize(dst, dst)
}

// marginal multiplies (log-sums) every incoming message, no exclusion.
func (n *variableNode) marginal() []float64 {
	m := make([]float64, n.v.Size())
	for _, msg := range n.inbox {
		floats.Add(m, msg)
	}

	return factor.Probabilities(m, m)
}

// factorNode: links[pos] = (variable index, slot of this factor at that
// variable); inbox[pos] = last message from the variable at scope position pos.
type factorNode struct {
	f     *factor.Factor
	sizes []int
	cells [][]int // decoded combination per table cell
	links []link
	inbox [][]float64
}

func newFactorNode(f *factor.Factor) *factorNode {
	n := &factorNode{
		f:     f,
		sizes: f.Sizes(),
		cells: make([][]int, f.Len()),
		links: make([]link, f.Arity()),
		inbox: make([][]float64, f.Arity()),
	}
	for c := range n.cells {
		n.cells[c] = f.Decode(c, nil)
	}
	for pos, size := range n.sizes {
		n.inbox[pos] = make([]float64, size)
	}

	return n
}

func (n *factorNode) neighbors() []link { return n.links }

func (n *factorNode) receive(slot int, msg []float64) { copy(n.inbox[slot], msg) }

// sendTo marginalizes the table onto scope position t, weighting every cell
// by the messages received from all other scope positions.
func (n *factorNode) sendTo(t int, dst []float64) []float64 {
	dst = dst[:n.sizes[t]]
	for i := range dst {
		dst[i] = math.Inf(-1)
	}
	for c, comb := range n.cells {
		s := n.f.LogWeightAt(c)
		for i, msg := range n.inbox {
			if i != t {
				s += msg[comb[i]]
			}
		}
		dst[comb[t]] = factor.LogAddExp(dst[comb[t]], s)
	}

	return dst
}

// exchange runs one phase: every sender emits to all its neighbors and each
// message is delivered to the receiving side. Senders and receivers are
// disjoint, so the phase reads only messages from the previous phase.
func exchange(senders, receivers []node, scratch []float64) {
	for _, s := range senders {
		for slot, l := range s.neighbors() {
			msg := s.sendTo(slot, scratch)
			receivers[l.node].receive(l.slot, msg)
		}
	}
}
