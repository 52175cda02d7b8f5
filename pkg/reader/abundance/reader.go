// Package abundance reads abundance datasets: CSV files without a
// header whose rows are (label, value[, uncertainty]). Lines starting
// with '#' are comments. Both glycoform abundances (labels are
// glycoform names) and glycation abundances (labels are extra-hexose
// counts) use this format.
package abundance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/glycoproteomics/cafog/pkg/core"
)

// ErrTooFewColumns indicates a dataset without any data column.
var ErrTooFewColumns = errors.New("abundance: dataset contains too few columns")

// Record is one dataset row: a label with an uncertain abundance.
type Record struct {
	Label     string
	Abundance core.Value
}

// Read parses an abundance dataset. name is used in messages only.
//
// The first data row determines the column count: one column is fatal
// (no values), two columns means uncertainties default to zero (with a
// warning), and columns beyond the third are dropped (with a warning).
func Read(r io.Reader, name string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []Record
	warned := false
	row := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("abundance: reading %s: %w", name, err)
		}
		row++

		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s", ErrTooFewColumns, name)
		}
		if !warned {
			switch {
			case len(fields) == 2:
				log.Warn("dataset lacks an error column, assuming errors of zero", "dataset", name)
			case len(fields) > 3:
				log.Warn("dataset contains additional columns, which will be ignored",
					"dataset", name, "extra", len(fields)-3)
			}
			warned = true
		}

		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("abundance: %s row %d: invalid value %q: %w", name, row, fields[1], err)
		}
		stddev := 0.0
		if len(fields) >= 3 {
			stddev, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("abundance: %s row %d: invalid uncertainty %q: %w", name, row, fields[2], err)
			}
		}

		records = append(records, Record{
			Label:     fields[0],
			Abundance: core.NewValue(value, stddev),
		})
	}
	return records, nil
}
