package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// MonosaccharideFormulas maps monosaccharide names to their residue
// formulas (i.e., after loss of water on glycosidic bond formation).
var MonosaccharideFormulas = map[string]Formula{
	"Hex":    mustParseFormula("C6 H10 O5"),
	"HexNAc": mustParseFormula("C8 H13 O5 N1"),
	"Neu5Ac": mustParseFormula("C11 H17 O8 N1"),
	"Neu5Gc": mustParseFormula("C11 H17 O9 N1"),
	"Fuc":    mustParseFormula("C6 H10 O4"),
}

// NomenclatureError indicates a glycan name that does not match the
// Zhang shorthand grammar and cannot be converted to a composition.
type NomenclatureError struct {
	Name string
}

func (e *NomenclatureError) Error() string {
	return fmt.Sprintf("invalid glycan name: %q", e.Name)
}

// Glycan is one candidate glycan attachable at a glycosylation site.
type Glycan struct {
	Name        string
	Composition Composition
	Abundance   float64 // relative abundance weight, optional
}

// NewGlycan creates a glycan from its name and an optional composition
// string ("1 Hex, 2 HexNAc"). An empty composition is derived from the
// name via the Zhang grammar; a name violating the grammar yields a
// NomenclatureError.
func NewGlycan(name, composition string, abundance float64) (Glycan, error) {
	var comp Composition
	if composition == "" {
		var err error
		comp, err = ParseZhangName(name)
		if err != nil {
			return Glycan{}, err
		}
	} else {
		comp = ParseComposition(composition)
	}
	return Glycan{Name: name, Composition: comp, Abundance: abundance}, nil
}

// reZhangName matches glycan abbreviations in Zhang nomenclature,
// e.g. "A2G1F" or "A2S1G1F": antennas, Neu5Gc, Neu5Ac, alpha-Gal, Gal,
// Man, core Fuc, bisecting GlcNAc, in that order.
var reZhangName = regexp.MustCompile(
	`^(?:A(?P<A>\d)+)?(?:Sg(?P<Sg>\d)+)?(?:S(?P<S>\d)+)?` +
		`(?:Ga(?P<Ga>\d)+)?(?:G(?P<G>\d)+)?(?:M(?P<M>\d)+)?` +
		`(?P<F>F)?(?P<B>B)?$`)

// Names that denote the absence of a glycan.
var unglycosylatedNames = map[string]bool{
	"non-glycosylated": true,
	"unglycosylated":   true,
	"null":             true,
}

// ParseZhangName converts a glycan abbreviation in Zhang nomenclature
// (e.g. "A2G1F") to its monosaccharide composition (4 Hex, 3 HexNAc,
// 1 Fuc). The names "non-glycosylated", "unglycosylated" and "null"
// yield the empty composition. Returns a NomenclatureError if the name
// does not match the grammar.
func ParseZhangName(name string) (Composition, error) {
	m := reZhangName.FindStringSubmatch(name)
	if m == nil {
		if unglycosylatedNames[name] {
			return Composition{}, nil
		}
		return Composition{}, &NomenclatureError{Name: name}
	}

	groups := make(map[string]string)
	empty := true
	for i, groupName := range reZhangName.SubexpNames() {
		if i == 0 || groupName == "" {
			continue
		}
		groups[groupName] = m[i]
		if m[i] != "" {
			empty = false
		}
	}
	if empty {
		return Composition{}, nil
	}

	counts := make(map[string]int, len(groups))
	for groupName, s := range groups {
		switch s {
		case "":
			counts[groupName] = 0
		case "F", "B":
			counts[groupName] = 1
		default:
			counts[groupName], _ = strconv.Atoi(s)
		}
	}
	// There are always three Man; a missing antenna count on an
	// M-less abbreviation means a biantennary glycan.
	if groups["M"] == "" {
		counts["M"] = 3
		if groups["A"] == "" {
			counts["A"] = 2
		}
	}

	return NewComposition(map[string]int{
		"Hex":    counts["Sg"] + counts["S"] + 2*counts["Ga"] + counts["G"] + counts["M"],
		"HexNAc": counts["A"] + 2 + counts["B"],
		"Neu5Ac": counts["S"],
		"Neu5Gc": counts["Sg"],
		"Fuc":    counts["F"],
	}), nil
}

// GlycanMass returns the average mass of a monosaccharide composition.
// Units without a known formula contribute zero.
func GlycanMass(c Composition) float64 {
	mass := 0.0
	for _, unit := range c.Units() {
		mass += float64(c.Count(unit)) * MonosaccharideFormulas[unit].Mass()
	}
	return mass
}
