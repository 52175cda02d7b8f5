package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/glycoproteomics/cafog/pkg/core"
	"github.com/glycoproteomics/cafog/pkg/graph"
	"github.com/glycoproteomics/cafog/pkg/reader/abundance"
	"github.com/glycoproteomics/cafog/pkg/reader/library"
	"github.com/glycoproteomics/cafog/pkg/writer/csvout"
	"github.com/glycoproteomics/cafog/pkg/writer/dot"
	"github.com/glycoproteomics/cafog/pkg/writer/gexf"
	"github.com/glycoproteomics/cafog/pkg/writer/sqlite"
)

func runCorrect(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if graphFormat != "" && graphFormat != "dot" && graphFormat != "gexf" {
		return fmt.Errorf("invalid graph format %q, must be dot or gexf", graphFormat)
	}

	observed, err := readObservations(glycoformsFile)
	if err != nil {
		return err
	}
	rates, err := readRates(glycationFile)
	if err != nil {
		return err
	}
	glycans, err := readLibrary(libraryFile)
	if err != nil {
		return err
	}

	log.Info("correcting dataset", "glycoforms", glycoformsFile)

	g, err := graph.Build(observed, rates, glycans, sites)
	if err != nil {
		return err
	}
	if err := g.Correct(); err != nil {
		return err
	}
	if normalize {
		if err := g.Normalize(); err != nil {
			return err
		}
	}

	if err := writeGlycoformList(g); err != nil {
		return err
	}
	if err := writeGraphFile(g); err != nil {
		return err
	}
	if sqliteFile != "" {
		if err := writeSQLite(g); err != nil {
			return err
		}
	}

	log.Info("done", "glycoforms", g.Len())
	return nil
}

// readObservations reads the glycoform abundance dataset.
func readObservations(path string) ([]graph.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glycoform file: %w", err)
	}
	defer f.Close()

	records, err := abundance.Read(f, path)
	if err != nil {
		return nil, err
	}
	observed := make([]graph.Observation, len(records))
	for i, r := range records {
		observed[i] = graph.Observation{Label: r.Label, Abundance: r.Abundance}
	}
	return observed, nil
}

// readRates reads the glycation dataset, whose labels are extra-hexose
// counts, and builds the conversion rate table.
func readRates(path string) (*graph.RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glycation file: %w", err)
	}
	defer f.Close()

	records, err := abundance.Read(f, path)
	if err != nil {
		return nil, err
	}
	points := make([]graph.RatePoint, len(records))
	for i, r := range records {
		count, err := strconv.Atoi(strings.TrimSpace(r.Label))
		if err != nil {
			return nil, fmt.Errorf("glycation label %q is not a hexose count: %w", r.Label, err)
		}
		points[i] = graph.RatePoint{Count: count, Abundance: r.Abundance}
	}
	return graph.NewRateTable(points), nil
}

// readLibrary reads the optional glycan library. Entries without a
// composition get one derived from their name.
func readLibrary(path string) ([]core.Glycan, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glycan library: %w", err)
	}
	defer f.Close()

	records, err := library.Read(f, path)
	if err != nil {
		return nil, err
	}
	glycans := make([]core.Glycan, 0, len(records))
	for _, r := range records {
		g, err := core.NewGlycan(r.Name, r.Composition, r.Abundance)
		if err != nil {
			return nil, err
		}
		glycans = append(glycans, g)
	}
	return glycans, nil
}

func writeGlycoformList(g *graph.Graph) error {
	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return csvout.Write(w, g)
}

// writeGraphFile exports the graph next to the glycoform dataset,
// as <dataset>_corr.gv or <dataset>_corr.gexf.
func writeGraphFile(g *graph.Graph) error {
	if graphFormat == "" {
		return nil
	}
	base := strings.TrimSuffix(glycoformsFile, filepath.Ext(glycoformsFile))

	var path string
	var write func(io.Writer, *graph.Graph) error
	switch graphFormat {
	case "dot":
		path = base + "_corr.gv"
		write = dot.Write
	case "gexf":
		path = base + "_corr.gexf"
		write = gexf.Write
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %w", err)
	}
	defer f.Close()

	if err := write(f, g); err != nil {
		return err
	}
	log.Info("graph written", "file", path)
	return nil
}

func writeSQLite(g *graph.Graph) error {
	w, err := sqlite.NewWriter(sqliteFile)
	if err != nil {
		return err
	}
	if err := w.WriteGraph(g); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.Info("graph database written", "file", sqliteFile)
	return nil
}
