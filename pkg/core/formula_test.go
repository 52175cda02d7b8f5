package core

import (
	"math"
	"testing"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
		want    map[string]int
	}{
		{"glucose", "C6 H12 O6", false, map[string]int{"C": 6, "H": 12, "O": 6}},
		{"count defaults to 1", "C H4", false, map[string]int{"C": 1, "H": 4}},
		{"negative count", "C50 H100 N-3 Cl", false, map[string]int{"C": 50, "H": 100, "N": -3, "Cl": 1}},
		{"empty", "", false, map[string]int{}},
		{"invalid element token", "C6 12H", true, nil},
		{"lowercase element", "c6", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormula(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormula(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			for element, count := range tt.want {
				if got.elements.Count(element) != count {
					t.Errorf("ParseFormula(%q)[%s] = %d, want %d",
						tt.in, element, got.elements.Count(element), count)
				}
			}
		})
	}
}

func TestFormulaMass(t *testing.T) {
	tests := []struct {
		name      string
		formula   string
		want      float64
		tolerance float64
	}{
		{"glucose", "C6 H12 O6", 180.16, 0.01},
		{"water", "H2 O", 18.02, 0.01},
		{"hexose residue", "C6 H10 O5", 162.14, 0.01},
		{"empty formula", "", 0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormula(tt.formula)
			if err != nil {
				t.Fatalf("ParseFormula(%q) error = %v", tt.formula, err)
			}
			if got := f.Mass(); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Mass() = %.4f, want %.2f (within %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestFormulaAdd(t *testing.T) {
	a, _ := ParseFormula("C6 H10 O5")
	b, _ := ParseFormula("H2 O")
	sum := a.Add(b)
	if got := sum.String(); got != "C6 H12 O6" {
		t.Errorf("Add() = %q, want %q", got, "C6 H12 O6")
	}
}

func TestFormulaMulScalar(t *testing.T) {
	f, _ := ParseFormula("C6 H10 O5")
	if got := f.MulScalar(2).String(); got != "C12 H20 O10" {
		t.Errorf("MulScalar(2) = %q, want %q", got, "C12 H20 O10")
	}
	if !f.MulScalar(0).IsEmpty() {
		t.Errorf("MulScalar(0) = %q, want empty", f.MulScalar(0))
	}
}

func TestFormulaString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"counts of one omitted", "C H4", "C H4"},
		{"alphabetical order", "O6 C6 H12", "C6 H12 O6"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormula(tt.in)
			if err != nil {
				t.Fatalf("ParseFormula(%q) error = %v", tt.in, err)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
