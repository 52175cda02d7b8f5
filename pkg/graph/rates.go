package graph

import (
	"github.com/glycoproteomics/cafog/pkg/core"
)

// RatePoint is one glycation measurement: the abundance (in percent) of
// the species carrying Count extra hexose units.
type RatePoint struct {
	Count     int
	Abundance core.Value
}

// RateEntry is one conversion: adding Delta to a composition occurs
// with the given Rate (a fraction, not a percentage).
type RateEntry struct {
	Delta core.Composition
	Rate  core.Value
}

// RateTable maps composition deltas to conversion rates. It is
// read-only once built. All deltas have strictly positive unit counts,
// so a delta and its negation can never both be present.
type RateTable struct {
	entries map[string]RateEntry
}

// NewRateTable builds a rate table from glycation measurements. Each
// point with Count > 0 contributes the delta {Hex: Count} with rate
// Abundance/100; points with Count <= 0 describe unconverted species
// and are dropped.
func NewRateTable(points []RatePoint) *RateTable {
	entries := make(map[string]RateEntry, len(points))
	for _, p := range points {
		if p.Count <= 0 {
			continue
		}
		delta := core.NewComposition(map[string]int{"Hex": p.Count})
		entries[delta.Key()] = RateEntry{
			Delta: delta,
			Rate:  p.Abundance.MulScalar(1.0 / 100),
		}
	}
	return &RateTable{entries: entries}
}

// Lookup returns the entry for the given composition delta.
func (t *RateTable) Lookup(delta core.Composition) (RateEntry, bool) {
	e, ok := t.entries[delta.Key()]
	return e, ok
}

// Len returns the number of conversions in the table.
func (t *RateTable) Len() int {
	return len(t.entries)
}
