// Package library reads glycan libraries: CSV files with a header row
// whose data rows are (glycan, composition[, abundance]). An empty
// composition means the composition is later derived from the glycan
// name via the Zhang nomenclature grammar.
package library

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Record is one glycan library entry. Composition may be empty.
type Record struct {
	Name        string
	Composition string
	Abundance   float64
}

// Read parses a glycan library. name is used in messages only.
func Read(r io.Reader, name string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []Record
	row := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("library: reading %s: %w", name, err)
		}
		row++
		if row == 1 {
			// header
			continue
		}
		if len(fields) == 0 || fields[0] == "" {
			continue
		}

		rec := Record{Name: fields[0]}
		if len(fields) >= 2 {
			rec.Composition = fields[1]
		}
		if len(fields) >= 3 && fields[2] != "" {
			rec.Abundance, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("library: %s row %d: invalid abundance %q: %w", name, row, fields[2], err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
