// Package gexf exports the glycation graph in GEXF 1.2 format for
// graph visualization tools. Uncertain values are split into separate
// value and error attributes, since GEXF only supports plain floats.
package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/glycoproteomics/cafog/pkg/graph"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Xmlns   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Attributes      []gexfAttrDecls `xml:"attributes"`
	Nodes           []gexfNode      `xml:"nodes>node"`
	Edges           []gexfEdge      `xml:"edges>edge"`
}

type gexfAttrDecls struct {
	Class string     `xml:"class,attr"`
	Attrs []gexfAttr `xml:"attribute"`
}

type gexfAttr struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID     string          `xml:"id,attr"`
	Label  string          `xml:"label,attr"`
	Values []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfEdge struct {
	ID     string          `xml:"id,attr"`
	Source string          `xml:"source,attr"`
	Target string          `xml:"target,attr"`
	Label  string          `xml:"label,attr"`
	Values []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfAttrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// Write exports a corrected graph to w in GEXF format.
func Write(w io.Writer, g *graph.Graph) error {
	if !g.IsCorrected() {
		return graph.ErrNotCorrected
	}

	doc := gexfDoc{
		Xmlns:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			DefaultEdgeType: "directed",
			Attributes: []gexfAttrDecls{
				{
					Class: "node",
					Attrs: []gexfAttr{
						{ID: "0", Title: "abundance", Type: "double"},
						{ID: "1", Title: "abundance_error", Type: "double"},
						{ID: "2", Title: "corr_abundance", Type: "double"},
						{ID: "3", Title: "corr_abundance_error", Type: "double"},
					},
				},
				{
					Class: "edge",
					Attrs: []gexfAttr{
						{ID: "0", Title: "c", Type: "double"},
						{ID: "1", Title: "c_error", Type: "double"},
					},
				},
			},
		},
	}

	for i, n := range g.Nodes() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, gexfNode{
			ID:    strconv.Itoa(i),
			Label: n.Name,
			Values: []gexfAttrValue{
				{For: "0", Value: formatFloat(n.Observed.Nominal)},
				{For: "1", Value: formatFloat(n.Observed.StdDev)},
				{For: "2", Value: formatFloat(n.Corrected.Nominal)},
				{For: "3", Value: formatFloat(n.Corrected.StdDev)},
			},
		})
	}
	for i, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: strconv.Itoa(e.Source),
			Target: strconv.Itoa(e.Sink),
			Label:  e.Delta.String(),
			Values: []gexfAttrValue{
				{For: "0", Value: formatFloat(e.Rate.Nominal)},
				{For: "1", Value: formatFloat(e.Rate.StdDev)},
			},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("gexf: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gexf: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("gexf: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
