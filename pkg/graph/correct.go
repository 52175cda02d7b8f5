package graph

import (
	"github.com/glycoproteomics/cafog/pkg/core"
)

// Visitation states for the depth-first topological sort.
const (
	white = iota // undiscovered
	gray         // on the current DFS path
	black        // fully processed
)

// Correct estimates, for every node, the abundance that existed before
// glycation moved population between nodes. Nodes are visited in
// topological order; for node n with predecessors p and successors s:
//
//	corrected(n) = (observed(n) - Σ corrected(p)·rate(p→n)) / (1 - Σ rate(n→s))
//
// The result does not depend on which topological order is chosen.
// Corrected values may be negative; that is diagnostic of noisy or
// inconsistent input and is preserved.
//
// Returns an InconsistentModelError if any node's outgoing rates sum to
// 1 or more; in that case no corrected value is published.
func (g *Graph) Correct() error {
	for n := range g.nodes {
		total := 0.0
		for _, e := range g.out[n] {
			total += g.edges[e].Rate.Nominal
		}
		if total >= 1 {
			return &InconsistentModelError{Node: g.nodes[n].Name, Total: total}
		}
	}

	order, err := g.topologicalOrder()
	if err != nil {
		return err
	}

	one := core.NewValue(1, 0)
	corrected := make([]core.Value, len(g.nodes))
	for _, n := range order {
		inAbundance := core.Value{}
		for _, e := range g.in[n] {
			edge := g.edges[e]
			inAbundance = inAbundance.Add(corrected[edge.Source].Mul(edge.Rate))
		}
		outRate := core.Value{}
		for _, e := range g.out[n] {
			outRate = outRate.Add(g.edges[e].Rate)
		}
		corrected[n] = g.nodes[n].Observed.Sub(inAbundance).Div(one.Sub(outRate))
	}

	for n := range g.nodes {
		g.nodes[n].Corrected = corrected[n]
	}
	g.corrected = true
	return nil
}

// Normalize rescales all corrected abundances (and their uncertainties,
// by the same factor) so their nominal values sum to exactly 100,
// turning measurement-scale abundances into population fractions.
// It must be invoked explicitly after Correct.
func (g *Graph) Normalize() error {
	if !g.corrected {
		return ErrNotCorrected
	}
	total := 0.0
	for n := range g.nodes {
		total += g.nodes[n].Corrected.Nominal
	}
	if total == 0 {
		return ErrZeroTotal
	}
	factor := 100 / total
	for n := range g.nodes {
		g.nodes[n].Corrected = g.nodes[n].Corrected.MulScalar(factor)
	}
	return nil
}

// topologicalOrder returns the node indices in an order where every
// edge points from an earlier to a later node (reverse DFS post-order).
func (g *Graph) topologicalOrder() ([]int, error) {
	state := make([]int, len(g.nodes))
	order := make([]int, 0, len(g.nodes))

	var visit func(n int) error
	visit = func(n int) error {
		if state[n] == gray {
			return ErrCycle
		}
		if state[n] == black {
			return nil
		}
		state[n] = gray
		for _, e := range g.out[n] {
			if err := visit(g.edges[e].Sink); err != nil {
				return err
			}
		}
		state[n] = black
		order = append(order, n)
		return nil
	}

	for n := range g.nodes {
		if state[n] == white {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
