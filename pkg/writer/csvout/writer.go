// Package csvout writes the corrected glycoform list in CSV format:
// one row per glycoform with observed and corrected abundances and one
// column per monosaccharide, sorted by corrected abundance descending.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/glycoproteomics/cafog/pkg/graph"
)

// Write writes the glycoform list of a corrected graph to w.
func Write(w io.Writer, g *graph.Graph) error {
	if !g.IsCorrected() {
		return graph.ErrNotCorrected
	}

	nodes := g.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Corrected.Nominal > nodes[j].Corrected.Nominal
	})

	// One column per monosaccharide appearing anywhere in the graph.
	unitSet := make(map[string]bool)
	for _, n := range nodes {
		for _, unit := range n.Composition.Units() {
			unitSet[unit] = true
		}
	}
	units := make([]string, 0, len(unitSet))
	for unit := range unitSet {
		units = append(units, unit)
	}
	sort.Strings(units)

	cw := csv.NewWriter(w)
	header := []string{"glycoform", "abundance", "abundance_error",
		"corr_abundance", "corr_abundance_error"}
	header = append(header, units...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvout: %w", err)
	}

	for _, n := range nodes {
		row := []string{
			n.Name,
			formatFloat(n.Observed.Nominal),
			formatFloat(n.Observed.StdDev),
			formatFloat(n.Corrected.Nominal),
			formatFloat(n.Corrected.StdDev),
		}
		for _, unit := range units {
			row = append(row, strconv.Itoa(n.Composition.Count(unit)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvout: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvout: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
