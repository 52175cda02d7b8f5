// Package graph assembles the glycation graph and corrects glycoform
// abundances for non-enzymatic glycation.
//
// Nodes are glycoforms, identified by their monosaccharide composition.
// A directed edge source→sink states that part of the source population
// was converted into the sink by glycation; the edge's rate is the
// converted fraction. Every edge's delta has a strictly positive unit
// count, so the graph is acyclic by construction.
package graph

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/glycoproteomics/cafog/pkg/core"
	"github.com/glycoproteomics/cafog/pkg/glycoprotein"
)

// Observation is one observed glycoform abundance, keyed by a display
// label such as "A2G0F/A2G1F".
type Observation struct {
	Label     string
	Abundance core.Value
}

// Node is a glycoform in the glycation graph. Corrected is only valid
// after Correct has run.
type Node struct {
	Composition core.Composition
	Name        string
	Observed    core.Value
	Corrected   core.Value
}

// Edge is a directed conversion between two nodes, referenced by index.
type Edge struct {
	Source int
	Sink   int
	Delta  core.Composition
	Rate   core.Value
}

// Graph is the glycation graph: an immutable arena of nodes and edges
// built once by Build, corrected in place once by Correct, and then
// read through Nodes and Edges.
type Graph struct {
	nodes     []Node
	edges     []Edge
	out       [][]int // outgoing edge indices per node
	in        [][]int // incoming edge indices per node
	corrected bool
}

type buildOptions struct {
	logger *log.Logger
}

// Option configures Build.
type Option func(*buildOptions)

// WithLogger sets the logger used for non-fatal warnings during graph
// construction. Defaults to the package-level default logger.
func WithLogger(l *log.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build assembles the glycation graph from observed glycoform
// abundances, a conversion rate table, and an optional glycan library.
//
// If library is empty, per-glycan compositions are derived from every
// distinct glycan name appearing in the observed labels via the Zhang
// grammar. If a library is supplied, glycans appearing only in the
// library are reported; glycans appearing only in the observed data are
// added to the library by name. Either way, an unparsable glycan name
// aborts construction with a NomenclatureError.
//
// Edge matching checks each pair's composition delta against the rate
// table, trying delta before its negation. The table only ever holds
// positive-count deltas, so at most one direction can match.
func Build(observed []Observation, rates *RateTable, library []core.Glycan, sites int, opts ...Option) (*Graph, error) {
	options := buildOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger

	// Glycan names appearing in the observed data, in sorted order.
	observedGlycans := make(map[string]bool)
	for _, obs := range observed {
		for _, alt := range strings.Split(obs.Label, " or ") {
			for _, name := range strings.Split(alt, "/") {
				observedGlycans[name] = true
			}
		}
	}

	gp := glycoprotein.New(sites, library)
	if len(library) == 0 {
		for _, name := range sortedKeys(observedGlycans) {
			if err := gp.AddGlycan(name); err != nil {
				return nil, err
			}
		}
	} else {
		libraryGlycans := make(map[string]bool, len(library))
		for _, g := range library {
			libraryGlycans[g.Name] = true
		}

		var onlyLibrary, onlyObserved []string
		for _, name := range sortedKeys(libraryGlycans) {
			if !observedGlycans[name] {
				onlyLibrary = append(onlyLibrary, name)
			}
		}
		for _, name := range sortedKeys(observedGlycans) {
			if !libraryGlycans[name] {
				onlyObserved = append(onlyObserved, name)
			}
		}
		if len(onlyLibrary) > 0 {
			logger.Warn("glycans appear in the library but not in the observed glycoforms",
				"glycans", strings.Join(onlyLibrary, ", "))
		}
		if len(onlyObserved) > 0 {
			logger.Warn("glycans appear in the observed glycoforms but not in the library; adding them",
				"glycans", strings.Join(onlyObserved, ", "))
			for _, name := range onlyObserved {
				if err := gp.AddGlycan(name); err != nil {
					return nil, err
				}
			}
		}
	}

	// Observed abundances keyed by the multiset of per-site glycan
	// names, so "A2G0F/A2G1F" and "A2G1F/A2G0F" describe the same
	// glycoform.
	abundances := make(map[string]core.Value, len(observed))
	for _, obs := range observed {
		abundances[labelKey(obs.Label)] = obs.Abundance
	}

	g := &Graph{}
	for _, gf := range gp.Glycoforms() {
		// Try each experimentally indistinguishable label; the
		// first one present in the observed data wins.
		abundance := core.Value{}
		found := false
		for _, alt := range strings.Split(gf.Name, " or ") {
			if a, ok := abundances[labelKey(alt)]; ok {
				abundance = a
				found = true
				break
			}
		}
		if !found {
			logger.Warn("no observed abundance for glycoform, assuming 0",
				"glycoform", gf.Name)
		}

		n := len(g.nodes)
		g.nodes = append(g.nodes, Node{
			Composition: gf.Composition,
			Name:        gf.Name,
			Observed:    abundance,
		})
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)

		for m := 0; m < n; m++ {
			delta := gf.Composition.Sub(g.nodes[m].Composition)
			if entry, ok := rates.Lookup(delta); ok {
				g.addEdge(m, n, entry)
			} else if entry, ok := rates.Lookup(delta.Neg()); ok {
				g.addEdge(n, m, entry)
			}
		}
	}
	return g, nil
}

func (g *Graph) addEdge(source, sink int, entry RateEntry) {
	e := len(g.edges)
	g.edges = append(g.edges, Edge{
		Source: source,
		Sink:   sink,
		Delta:  entry.Delta,
		Rate:   entry.Rate,
	})
	g.out[source] = append(g.out[source], e)
	g.in[sink] = append(g.in[sink], e)
}

// labelKey returns a canonical key for a glycoform label: its "/"
// separated glycan names, sorted.
func labelKey(label string) string {
	parts := strings.Split(label, "/")
	sort.Strings(parts)
	return strings.Join(parts, "/")
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns a copy of the node list. Corrected values are only
// meaningful once IsCorrected reports true.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns a copy of the edge list. Source and Sink index into
// Nodes.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// IsCorrected reports whether Correct has run successfully.
func (g *Graph) IsCorrected() bool {
	return g.corrected
}
