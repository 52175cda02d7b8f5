package core

import (
	"errors"
	"math"
	"testing"
)

func TestParseZhangName(t *testing.T) {
	tests := []struct {
		name    string
		glycan  string
		wantErr bool
		want    map[string]int
	}{
		{
			"agalactosylated biantennary with fucose",
			"A2G0F", false,
			map[string]int{"Hex": 3, "HexNAc": 4, "Fuc": 1},
		},
		{
			"monogalactosylated biantennary with fucose",
			"A2G1F", false,
			map[string]int{"Hex": 4, "HexNAc": 4, "Fuc": 1},
		},
		{
			"sialylated",
			"A2S1G1F", false,
			map[string]int{"Hex": 5, "HexNAc": 4, "Neu5Ac": 1, "Fuc": 1},
		},
		{
			"with Neu5Gc",
			"A2Sg1G0", false,
			map[string]int{"Hex": 4, "HexNAc": 4, "Neu5Gc": 1},
		},
		{
			"high mannose",
			"M5", false,
			map[string]int{"Hex": 5, "HexNAc": 2},
		},
		{
			"monoantennary",
			"A1G0", false,
			map[string]int{"Hex": 3, "HexNAc": 3},
		},
		{
			"bisecting GlcNAc",
			"A2G0B", false,
			map[string]int{"Hex": 3, "HexNAc": 5},
		},
		{"unglycosylated", "unglycosylated", false, map[string]int{}},
		{"non-glycosylated", "non-glycosylated", false, map[string]int{}},
		{"null", "null", false, map[string]int{}},
		{"empty string", "", false, map[string]int{}},
		{"invalid name", "XYZ", true, nil},
		{"wrong token order", "F2A2", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseZhangName(tt.glycan)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseZhangName(%q) error = %v, wantErr %v", tt.glycan, err, tt.wantErr)
			}
			if tt.wantErr {
				var nomErr *NomenclatureError
				if !errors.As(err, &nomErr) {
					t.Fatalf("error %v is not a NomenclatureError", err)
				}
				if nomErr.Name != tt.glycan {
					t.Errorf("NomenclatureError.Name = %q, want %q", nomErr.Name, tt.glycan)
				}
				return
			}
			if got.Len() != len(tt.want) {
				t.Fatalf("ParseZhangName(%q) = %v, want %v", tt.glycan, got, tt.want)
			}
			for unit, count := range tt.want {
				if got.Count(unit) != count {
					t.Errorf("ParseZhangName(%q)[%s] = %d, want %d",
						tt.glycan, unit, got.Count(unit), count)
				}
			}
		})
	}
}

func TestNewGlycan(t *testing.T) {
	// Composition derived from the name.
	g, err := NewGlycan("A2G0F", "", 25)
	if err != nil {
		t.Fatalf("NewGlycan() error = %v", err)
	}
	if g.Composition.Count("HexNAc") != 4 {
		t.Errorf("derived composition = %v, want 4 HexNAc", g.Composition)
	}
	if g.Abundance != 25 {
		t.Errorf("Abundance = %v, want 25", g.Abundance)
	}

	// Explicit composition wins over the name.
	g, err = NewGlycan("custom", "2 Hex, 1 Fuc", 0)
	if err != nil {
		t.Fatalf("NewGlycan() error = %v", err)
	}
	if g.Composition.Count("Hex") != 2 || g.Composition.Count("Fuc") != 1 {
		t.Errorf("explicit composition = %v, want 2 Hex, 1 Fuc", g.Composition)
	}

	// Invalid name without a composition is fatal.
	if _, err := NewGlycan("bogus name", "", 0); err == nil {
		t.Error("NewGlycan() with invalid name succeeded, want NomenclatureError")
	}
}

func TestGlycanMass(t *testing.T) {
	tests := []struct {
		name      string
		comp      Composition
		want      float64
		tolerance float64
	}{
		{"single hexose", NewComposition(map[string]int{"Hex": 1}), 162.14, 0.01},
		{
			"A2G0F",
			NewComposition(map[string]int{"Hex": 3, "HexNAc": 4, "Fuc": 1}),
			1445.35, 0.05,
		},
		{"empty", Composition{}, 0, 1e-12},
		{"unknown unit contributes zero", NewComposition(map[string]int{"Xyl": 2}), 0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlycanMass(tt.comp); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("GlycanMass() = %.4f, want %.2f (within %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}
