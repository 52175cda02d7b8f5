// Package core provides the value types used throughout cafog:
// multiset compositions of named units, elemental formulas, measurement
// values with propagated uncertainty, and glycan nomenclature parsing.
package core

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Composition is an immutable multiset of named units (monosaccharides
// or PTMs) with signed integer counts. Zero-count entries are removed,
// so two compositions are equal exactly when their non-zero entries
// match. The zero value is the empty composition.
type Composition struct {
	counts map[string]int
}

// NewComposition creates a composition from a unit→count map.
// Zero counts are dropped; the input map is copied.
func NewComposition(counts map[string]int) Composition {
	c := make(map[string]int, len(counts))
	for unit, n := range counts {
		if n != 0 {
			c[unit] = n
		}
	}
	return Composition{counts: c}
}

// rePTMList matches one entry of a composition string such as
// "1 Hex, 2 HexNAc, Fuc": an optional count followed by a unit name.
var rePTMList = regexp.MustCompile(`(\d*)\s*([\w-]+)(?:,|$)`)

// ParseComposition extracts a composition from a string like
// "1 Hex, 2 HexNAc, Fuc". A missing count defaults to 1.
// Parts that do not match the entry pattern are ignored.
func ParseComposition(s string) Composition {
	counts := make(map[string]int)
	for _, m := range rePTMList.FindAllStringSubmatch(s, -1) {
		count := 1
		if m[1] != "" {
			count, _ = strconv.Atoi(m[1])
		}
		counts[m[2]] = count
	}
	return NewComposition(counts)
}

// Count returns the count of the given unit (0 if absent).
func (c Composition) Count(unit string) int {
	return c.counts[unit]
}

// Units returns the names of all units with non-zero counts,
// sorted alphabetically.
func (c Composition) Units() []string {
	units := make([]string, 0, len(c.counts))
	for unit := range c.counts {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}

// Len returns the number of distinct units with non-zero counts.
func (c Composition) Len() int {
	return len(c.counts)
}

// Total returns the sum of all unit counts.
func (c Composition) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// IsEmpty reports whether the composition has no non-zero entries.
func (c Composition) IsEmpty() bool {
	return len(c.counts) == 0
}

// Add returns the entry-wise sum of two compositions.
func (c Composition) Add(other Composition) Composition {
	counts := make(map[string]int, len(c.counts)+len(other.counts))
	for unit, n := range c.counts {
		counts[unit] = n
	}
	for unit, n := range other.counts {
		counts[unit] += n
	}
	return NewComposition(counts)
}

// Sub returns the entry-wise difference of two compositions.
func (c Composition) Sub(other Composition) Composition {
	return c.Add(other.Neg())
}

// Neg returns the composition with all counts negated.
func (c Composition) Neg() Composition {
	counts := make(map[string]int, len(c.counts))
	for unit, n := range c.counts {
		counts[unit] = -n
	}
	return Composition{counts: counts}
}

// Key returns a canonical string over the non-zero entries, suitable as
// a map key: units sorted alphabetically, rendered as "unit:count" and
// joined with "|". Compositions are equal iff their keys are equal.
func (c Composition) Key() string {
	units := c.Units()
	parts := make([]string, len(units))
	for i, unit := range units {
		parts[i] = fmt.Sprintf("%s:%d", unit, c.counts[unit])
	}
	return strings.Join(parts, "|")
}

// Equal reports structural equality over non-zero entries.
func (c Composition) Equal(other Composition) bool {
	if len(c.counts) != len(other.counts) {
		return false
	}
	for unit, n := range c.counts {
		if other.counts[unit] != n {
			return false
		}
	}
	return true
}

// String renders the composition like "1 Hex, 2 HexNAc" with units in
// alphabetical order, or "[no PTMs]" when empty.
func (c Composition) String() string {
	if c.IsEmpty() {
		return "[no PTMs]"
	}
	units := c.Units()
	parts := make([]string, len(units))
	for i, unit := range units {
		parts[i] = fmt.Sprintf("%d %s", c.counts[unit], unit)
	}
	return strings.Join(parts, ", ")
}
