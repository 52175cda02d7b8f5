package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Average atomic masses (Zhang mass set).
var atomicMasses = map[string]float64{
	"C":  12.010790,
	"H":  1.007968,
	"N":  14.006690,
	"O":  15.999370,
	"P":  30.973763,
	"S":  32.063900,
	"Cl": 35.45,
	"Na": 22.99,
}

// Formula is a molecular formula, i.e. a composition of chemical
// elements. It reuses Composition for its arithmetic.
type Formula struct {
	elements Composition
}

// reElement matches one element token of a formula string: an element
// symbol followed by an optional signed count, e.g. "C50" or "N-3".
var reElement = regexp.MustCompile(`^([A-Z][a-z]?)(-?\d*)$`)

// ParseFormula converts a space-separated formula string such as
// "C6 H12 O6" or "C50 H100 N-3 Cl" to a Formula. A missing count
// defaults to 1.
func ParseFormula(s string) (Formula, error) {
	counts := make(map[string]int)
	for _, part := range strings.Fields(s) {
		m := reElement.FindStringSubmatch(part)
		if m == nil {
			return Formula{}, fmt.Errorf("invalid formula part: %q", part)
		}
		count := 1
		if m[2] != "" {
			count, _ = strconv.Atoi(m[2])
		}
		counts[m[1]] += count
	}
	return Formula{elements: NewComposition(counts)}, nil
}

// Mass returns the average mass of the formula. Elements without a
// known atomic mass contribute zero.
func (f Formula) Mass() float64 {
	mass := 0.0
	for _, element := range f.elements.Units() {
		mass += float64(f.elements.Count(element)) * atomicMasses[element]
	}
	return mass
}

// Add returns the element-wise sum of two formulas.
func (f Formula) Add(other Formula) Formula {
	return Formula{elements: f.elements.Add(other.elements)}
}

// MulScalar multiplies each element count by factor.
func (f Formula) MulScalar(factor int) Formula {
	counts := make(map[string]int, f.elements.Len())
	for _, element := range f.elements.Units() {
		counts[element] = f.elements.Count(element) * factor
	}
	return Formula{elements: NewComposition(counts)}
}

// IsEmpty reports whether the formula contains no atoms.
func (f Formula) IsEmpty() bool {
	return f.elements.IsEmpty()
}

// String renders the formula like "C6 H12 O6" with elements in
// alphabetical order. Counts of 1 are omitted.
func (f Formula) String() string {
	var parts []string
	for _, element := range f.elements.Units() {
		count := f.elements.Count(element)
		if count == 1 {
			parts = append(parts, element)
		} else {
			parts = append(parts, fmt.Sprintf("%s%d", element, count))
		}
	}
	return strings.Join(parts, " ")
}

func mustParseFormula(s string) Formula {
	f, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}
	return f
}
