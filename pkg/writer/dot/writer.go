// Package dot exports the glycation graph in Graphviz dot format with
// record-shaped nodes showing name, observed and corrected abundance.
package dot

import (
	"fmt"
	"io"

	"github.com/glycoproteomics/cafog/pkg/graph"
)

// Write exports a corrected graph to w in dot format.
func Write(w io.Writer, g *graph.Graph) error {
	if !g.IsCorrected() {
		return graph.ErrNotCorrected
	}

	nodes := g.Nodes()
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	for i, n := range nodes {
		_, err := fmt.Fprintf(w, "\t%d [shape=record, label=\"{%s|%.2f|%.2f}\"];\n",
			i, n.Name, n.Observed.Nominal, n.Corrected.Nominal)
		if err != nil {
			return fmt.Errorf("dot: %w", err)
		}
	}
	for _, e := range g.Edges() {
		_, err := fmt.Fprintf(w, "\t%d -> %d [label=\"%s: %.2f%%\"];\n",
			e.Source, e.Sink, e.Delta, e.Rate.Nominal*100)
		if err != nil {
			return fmt.Errorf("dot: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	return nil
}
