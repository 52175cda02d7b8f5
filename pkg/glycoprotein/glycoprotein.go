// Package glycoprotein enumerates the glycoform space of a protein:
// all distinct joint monosaccharide compositions obtainable by choosing
// one glycan from a library for each glycosylation site.
package glycoprotein

import (
	"strings"

	"github.com/glycoproteomics/cafog/pkg/core"
)

// Glycoprotein is a protein with a fixed number of glycosylation sites
// and a library of candidate glycans shared by all sites.
type Glycoprotein struct {
	Sites   int
	Library []core.Glycan
}

// Glycoform is one distinct joint composition across all sites.
// Name joins the per-site glycan names with "/"; combinations that
// collapse to the same composition have their names joined by " or ".
// Abundance is the theoretical weight, rescaled so the most abundant
// glycoform has weight 100.
type Glycoform struct {
	Composition core.Composition
	Name        string
	Abundance   float64
}

// New creates a glycoprotein with the given site count and glycan
// library.
func New(sites int, library []core.Glycan) *Glycoprotein {
	return &Glycoprotein{Sites: sites, Library: append([]core.Glycan(nil), library...)}
}

// AddGlycan derives a glycan's composition from its name via the Zhang
// grammar and appends it to the library. Returns a NomenclatureError
// if the name is invalid.
func (gp *Glycoprotein) AddGlycan(name string) error {
	g, err := core.NewGlycan(name, "", 0)
	if err != nil {
		return err
	}
	gp.Library = append(gp.Library, g)
	return nil
}

// Glycoforms enumerates all combinations of library glycans across the
// glycosylation sites (len(Library)^Sites combinations) and groups them
// by composition. Weights of grouped combinations are summed, their
// names joined by " or ", and the merged weights rescaled so the
// maximum is 100. The result is in first-seen enumeration order.
func (gp *Glycoprotein) Glycoforms() []Glycoform {
	if gp.Sites <= 0 || len(gp.Library) == 0 {
		return nil
	}

	byKey := make(map[string]int)
	var groups []Glycoform
	var names []([]string)

	// Odometer over one library index per site.
	indices := make([]int, gp.Sites)
	for {
		composition := core.Composition{}
		parts := make([]string, gp.Sites)
		weight := 1.0
		for site, i := range indices {
			glycan := gp.Library[i]
			composition = composition.Add(glycan.Composition)
			parts[site] = glycan.Name
			weight *= glycan.Abundance
		}
		name := strings.Join(parts, "/")

		key := composition.Key()
		if g, ok := byKey[key]; ok {
			groups[g].Abundance += weight
			names[g] = append(names[g], name)
		} else {
			byKey[key] = len(groups)
			groups = append(groups, Glycoform{Composition: composition, Abundance: weight})
			names = append(names, []string{name})
		}

		// Advance the odometer; stop after the last combination.
		site := gp.Sites - 1
		for site >= 0 {
			indices[site]++
			if indices[site] < len(gp.Library) {
				break
			}
			indices[site] = 0
			site--
		}
		if site < 0 {
			break
		}
	}

	maxWeight := 0.0
	for g := range groups {
		groups[g].Name = strings.Join(names[g], " or ")
		if groups[g].Abundance > maxWeight {
			maxWeight = groups[g].Abundance
		}
	}
	if maxWeight > 0 {
		for g := range groups {
			groups[g].Abundance = groups[g].Abundance / maxWeight * 100
		}
	}
	return groups
}
