// Package sqlite writes the glycation graph to a SQLite database with
// one table of glycoforms and one table of conversion edges, for
// downstream querying and joining with other datasets.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/glycoproteomics/cafog/pkg/core"
	"github.com/glycoproteomics/cafog/pkg/graph"
)

// Writer handles writing a glycation graph to a SQLite database file.
type Writer struct {
	db       *sql.DB
	nodeStmt *sql.Stmt
	edgeStmt *sql.Stmt
}

// NewWriter creates a SQLite writer for the given output path.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{db: db}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS Glycoforms (
		NodeId INTEGER PRIMARY KEY,
		Name TEXT,
		Composition TEXT,
		Mass DOUBLE,
		Abundance DOUBLE,
		AbundanceError DOUBLE,
		CorrAbundance DOUBLE,
		CorrAbundanceError DOUBLE
	);

	CREATE TABLE IF NOT EXISTS Conversions (
		EdgeId INTEGER PRIMARY KEY,
		SourceId INTEGER REFERENCES Glycoforms(NodeId),
		SinkId INTEGER REFERENCES Glycoforms(NodeId),
		Delta TEXT,
		Rate DOUBLE,
		RateError DOUBLE
	);
	`
	if _, err := w.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (w *Writer) prepareStatements() error {
	var err error

	w.nodeStmt, err = w.db.Prepare(`
		INSERT INTO Glycoforms (
			NodeId, Name, Composition, Mass,
			Abundance, AbundanceError, CorrAbundance, CorrAbundanceError
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare glycoform statement: %w", err)
	}

	w.edgeStmt, err = w.db.Prepare(`
		INSERT INTO Conversions (
			EdgeId, SourceId, SinkId, Delta, Rate, RateError
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare conversion statement: %w", err)
	}
	return nil
}

// WriteGraph writes all nodes and edges of a corrected graph.
func (w *Writer) WriteGraph(g *graph.Graph) error {
	if !g.IsCorrected() {
		return graph.ErrNotCorrected
	}

	for i, n := range g.Nodes() {
		_, err := w.nodeStmt.Exec(
			i,
			n.Name,
			n.Composition.String(),
			core.GlycanMass(n.Composition),
			n.Observed.Nominal,
			n.Observed.StdDev,
			n.Corrected.Nominal,
			n.Corrected.StdDev,
		)
		if err != nil {
			return fmt.Errorf("failed to insert glycoform %s: %w", n.Name, err)
		}
	}

	for i, e := range g.Edges() {
		_, err := w.edgeStmt.Exec(
			i,
			e.Source,
			e.Sink,
			e.Delta.String(),
			e.Rate.Nominal,
			e.Rate.StdDev,
		)
		if err != nil {
			return fmt.Errorf("failed to insert conversion edge %d: %w", i, err)
		}
	}
	return nil
}

// Close closes the prepared statements and the database.
func (w *Writer) Close() error {
	if w.nodeStmt != nil {
		w.nodeStmt.Close()
	}
	if w.edgeStmt != nil {
		w.edgeStmt.Close()
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
